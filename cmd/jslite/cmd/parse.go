package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/openclassroom/jslite/pkg/jslite"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse jslite source and display the syntactic report",
	Long: `Parse jslite source code and print the syntactic report, including
an AST dump, exactly as an embedding IDE would display it.

Use --debug to additionally dump the raw Go AST structure with go-syntax
formatting, which is more useful for debugging the parser itself.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, _, err := readInput(args)
	if err != nil {
		return err
	}

	result := jslite.Lex(source)

	fmt.Print(result.SyntacticReport)
	if debugAST {
		fmt.Println("\n--- AST (raw) ---")
		pretty.Println(result.AST)
	}

	if result.SyntaxErrorCount > 0 {
		return fmt.Errorf("parsing failed with %d syntax error(s)", result.SyntaxErrorCount)
	}
	return nil
}
