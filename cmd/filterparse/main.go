// Command filterparse parses filter/command DSL statements, dumps the
// resulting tree and prints the canonical rendering. With no argument
// it reads one statement per line from stdin until an empty line.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/parsekit/peg/filter"
)

var cli struct {
	Statement string `arg:"" optional:"" help:"Statement to parse."`
}

func main() {
	ctx := kong.Parse(&cli)
	if cli.Statement != "" {
		stmt, err := filter.Parse(cli.Statement)
		ctx.FatalIfErrorf(err)
		repr.Println(stmt, repr.Indent("  "), repr.OmitEmpty(true))
		fmt.Println(stmt)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		stmt, err := filter.Parse(line)
		if err != nil {
			fmt.Println("Parsing failed -", err)
			continue
		}
		fmt.Println("Parsing succeeded - result:", stmt)
	}
	fmt.Println("Bye... :-)")
}
