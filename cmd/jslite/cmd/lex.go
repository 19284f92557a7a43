package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/openclassroom/jslite/pkg/jslite"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize and parse a jslite file or expression",
	Long: `Tokenize and parse a jslite program, printing the lexical and
syntactic reports an embedding IDE would display.

Examples:
  # Lex a script file
  jslite lex script.js

  # Lex an inline expression
  jslite lex -e "const x = 42;"

  # Emit machine-readable JSON
  jslite lex --json script.js

  # Extract just the token count from the JSON
  jslite lex --filter token_count script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(source))
		fmt.Println("---")
	}

	result := jslite.Lex(source)

	if jsonOutput || filterExpr != "" {
		return printLexJSON(result)
	}

	fmt.Print(result.LexicalReport)
	fmt.Print(result.SyntacticReport)
	if debugAST {
		fmt.Printf("\n--- AST (raw) ---\n%#v\n", result.AST)
	}

	if result.LexErrorCount+result.SyntaxErrorCount > 0 {
		return fmt.Errorf("lexing/parsing failed with %d lexical and %d syntactic error(s)",
			result.LexErrorCount, result.SyntaxErrorCount)
	}
	return nil
}

func printLexJSON(result jslite.LexResult) error {
	doc := "{}"
	var err error
	if doc, err = sjson.Set(doc, "token_count", result.TokenCount); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "lex_error_count", result.LexErrorCount); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "syntax_error_count", result.SyntaxErrorCount); err != nil {
		return err
	}
	if doc, err = sjson.SetRaw(doc, "lexical_report", fmt.Sprintf("%q", result.LexicalReport)); err != nil {
		return err
	}
	if doc, err = sjson.SetRaw(doc, "syntactic_report", fmt.Sprintf("%q", result.SyntacticReport)); err != nil {
		return err
	}

	if filterExpr != "" {
		fmt.Println(gjson.Get(doc, filterExpr).String())
		return nil
	}
	fmt.Println(string(pretty.Pretty([]byte(doc))))
	return nil
}
