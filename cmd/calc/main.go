// Command calc is a line calculator: it reads one arithmetic
// expression per line and prints the evaluated result, or the exact
// suffix the grammar gave up on. An empty line ends the session.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/parsekit/peg"
	"github.com/parsekit/peg/calc"
)

var (
	astFlag    = kingpin.Flag("ast", "Print the syntax tree instead of evaluating.").Bool()
	directFlag = kingpin.Flag("direct", "Evaluate during the parse, without building a tree.").Bool()
	exprArgs   = kingpin.Arg("expression", "Expression to evaluate.").Strings()
)

func main() {
	kingpin.CommandLine.Help = "A basic expression parser and evaluator. With no arguments it reads lines from stdin until an empty line."
	kingpin.Parse()

	if len(*exprArgs) > 0 {
		evalLine(strings.Join(*exprArgs, " "))
		return
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		evalLine(line)
	}
	fmt.Println("Bye... :-)")
}

func evalLine(line string) {
	if *directFlag {
		n, err := calc.Eval(line)
		if err != nil {
			reportFailure(line, err)
			return
		}
		fmt.Println("Parsing succeeded - result:", n)
		return
	}

	prog, end, err := peg.Run(calc.Grammar, line)
	switch {
	case err == nil && end.Offset == len(line):
		if *astFlag {
			repr.Println(prog, repr.Indent("  "), repr.OmitEmpty(true))
			return
		}
		n, err := prog.Eval()
		if err != nil {
			fmt.Println("Evaluation failed -", err)
			return
		}
		fmt.Println("Parsing succeeded - result:", n)
	case err == nil:
		// The grammar matched a strict prefix.
		fmt.Printf("Parsing failed - stopped at: %q\n", line[end.Offset:])
	default:
		reportFailure(line, err)
	}
}

func reportFailure(line string, err error) {
	var perr peg.Error
	if errors.As(err, &perr) {
		fmt.Printf("Parsing failed - stopped at: %q\n", line[perr.Position().Offset:])
		return
	}
	fmt.Println("Parsing failed -", err)
}
