package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Config is the shape of an optional .jslite.yaml: defaults a run can
// otherwise only set via flags.
type Config struct {
	Verbose          bool     `yaml:"verbose"`
	JSON             bool     `yaml:"json"`
	Builtins         []string `yaml:"builtins"`
	SuppressWarnings []string `yaml:"suppress_warnings"`
}

var (
	cfgFile string
	cfg     Config

	verbose    bool
	jsonOutput bool
	filterExpr string
	debugAST   bool
	evalExpr   string
)

var rootCmd = &cobra.Command{
	Use:   "jslite",
	Short: "A lexer, parser and semantic analyzer for a JavaScript subset",
	Long: `jslite tokenizes, parses and semantically analyzes a small,
didactic JavaScript-like language.

It implements three independent pipeline stages:
  - lex:     tokenize source and report lexical errors
  - parse:   build and print the syntax tree
  - analyze: resolve scopes and report semantic errors and warnings

Every report is rendered the way an embedding IDE would display it.`,
	Version:           Version,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON instead of the text report")
	rootCmd.PersistentFlags().StringVar(&filterExpr, "filter", "", "gjson path to extract from the JSON output (implies --json)")
	rootCmd.PersistentFlags().BoolVar(&debugAST, "debug", false, "additionally dump raw Go values: the AST for lex/parse, the diagnostics for analyze")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a .jslite.yaml config file")
}

// loadConfig reads an optional YAML config file and uses it to fill in any
// flag the user did not explicitly set; explicit flags always win.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return nil
	}
	data, err := os.ReadFile(cfgFile)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", cfgFile, err)
	}
	if !cmd.Flags().Changed("verbose") {
		verbose = cfg.Verbose
	}
	if !cmd.Flags().Changed("json") {
		jsonOutput = cfg.JSON
	}
	return nil
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// readInput resolves a command's source either from a file argument or an
// inline -e expression, mirroring how both lex and analyze accept input.
func readInput(args []string) (source, label string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	default:
		return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
	}
}
