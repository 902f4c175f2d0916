// Command queryparse parses SELECT statements and dumps the resulting
// tree. With no argument it reads one statement per line from stdin
// until an empty line.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/parsekit/peg/query"
)

var cli struct {
	SQL string `arg:"" optional:"" help:"SELECT statement to parse."`
}

func main() {
	ctx := kong.Parse(&cli)
	if cli.SQL != "" {
		sel, err := query.Parse(cli.SQL)
		ctx.FatalIfErrorf(err)
		repr.Println(sel, repr.Indent("  "), repr.OmitEmpty(true))
		fmt.Println(sel)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		sel, err := query.Parse(line)
		if err != nil {
			fmt.Println("Parsing failed -", err)
			continue
		}
		fmt.Println("Parsing succeeded - result:", sel)
	}
	fmt.Println("Bye... :-)")
}
