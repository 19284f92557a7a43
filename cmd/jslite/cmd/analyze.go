package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	prettyjson "github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/openclassroom/jslite/internal/semantic"
	"github.com/openclassroom/jslite/pkg/jslite"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run semantic analysis on a jslite file or expression",
	Long: `Resolve scopes, detect unused declarations and the rest of the
semantic checks, printing the same report an embedding IDE would show.

Examples:
  # Analyze a script file
  jslite analyze script.js

  # Analyze inline code
  jslite analyze -e "const x = 1;"

  # Emit machine-readable JSON and pull out just the warning count
  jslite analyze --filter warning_count script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "analyze inline code instead of reading from file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Analyzing: %s\n", filename)
	}

	var opts []semantic.Option
	if len(cfg.Builtins) > 0 {
		opts = append(opts, semantic.WithExtraBuiltins(cfg.Builtins))
	}
	if len(cfg.SuppressWarnings) > 0 {
		opts = append(opts, semantic.WithSuppressedWarnings(cfg.SuppressWarnings))
	}
	result := jslite.AnalyzeSemanticWithOptions(source, opts...)

	if jsonOutput || filterExpr != "" {
		return printAnalyzeJSON(result)
	}

	fmt.Print(result.Report)
	if debugAST {
		fmt.Println("\n--- diagnostics (raw) ---")
		pretty.Println(result.Errors, result.Warnings)
	}

	if result.ErrorCount > 0 {
		return fmt.Errorf("semantic analysis failed with %d error(s)", result.ErrorCount)
	}
	return nil
}

func printAnalyzeJSON(result jslite.SemanticResult) error {
	doc := "{}"
	var err error
	if doc, err = sjson.Set(doc, "error_count", result.ErrorCount); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "warning_count", result.WarningCount); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "errors", result.Errors); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "warnings", result.Warnings); err != nil {
		return err
	}

	if filterExpr != "" {
		fmt.Println(gjson.Get(doc, filterExpr).String())
		return nil
	}
	fmt.Println(string(prettyjson.Pretty([]byte(doc))))
	return nil
}
