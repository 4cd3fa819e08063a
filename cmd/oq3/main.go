package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/qirlab/oq3/pkgs/ast"
	"github.com/qirlab/oq3/pkgs/grammar"
	"github.com/qirlab/oq3/pkgs/syntax"
	"github.com/qirlab/oq3/pkgs/treefmt"
	"github.com/qirlab/oq3/runtime/parser"
)

// Build-time variables - can be set via ldflags
var (
	Version   string = "dev"
	GitCommit string = "unknown"
)

// Global flags
var (
	emit    string
	verbose bool
)

// fs is swappable for tests.
var fs = afero.NewOsFs()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oq3",
	Short: "Parse and inspect OpenQASM 3 source files",
	Long: `oq3 parses OpenQASM 3 source into a lossless syntax tree and inspects it.
Every byte of the input, trivia included, survives in the tree, so parse and
re-render always round-trips.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a file, verify the lossless round-trip, and list errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Dump the grammar's terminal table",
	Args:  cobra.NoArgs,
	RunE:  runKinds,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	parseCmd.Flags().StringVar(&emit, "emit", "text", "output format: text or cbor")
	rootCmd.AddCommand(parseCmd, checkCmd, kindsCmd)
}

func loadTree(path string) (*syntax.Node, *parser.ParseTree, error) {
	source, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	green, tree, err := parser.ParseToGreen(source)
	if err != nil {
		return nil, nil, err
	}
	return syntax.NewRootNode(green), tree, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	root, tree, err := loadTree(args[0])
	if err != nil {
		return err
	}
	checkVersion(root)

	switch emit {
	case "cbor":
		if err := treefmt.Write(cmd.OutOrStdout(), root.GreenNode()); err != nil {
			return err
		}
	case "text":
		printTree(cmd, root, 0)
	default:
		return fmt.Errorf("unknown emit format %q", emit)
	}

	if tree.HasErrors() {
		return fmt.Errorf("%d parse error(s)", len(tree.Errors))
	}
	return nil
}

func printTree(cmd *cobra.Command, n *syntax.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(cmd.OutOrStdout(), "%s%s@%s\n", indent, n.Kind(), n.Range())
	for _, c := range n.ChildrenWithTokens() {
		switch c := c.(type) {
		case *syntax.Token:
			if c.Kind().IsTrivia() {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s@%s %q\n", indent, c.Kind(), c.Range(), c.Text())
		case *syntax.Node:
			printTree(cmd, c, depth+1)
		}
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	root, tree, err := loadTree(args[0])
	if err != nil {
		return err
	}
	checkVersion(root)

	if rendered := root.Text(); rendered != string(tree.Source) {
		return fmt.Errorf("round-trip mismatch: tree renders %d bytes, source has %d", len(rendered), len(tree.Source))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "round-trip ok")

	if !tree.HasErrors() {
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("no errors"))
		return nil
	}
	for _, e := range tree.Errors {
		line, col := lineCol(tree.Source, e.Offset)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s:%d:%d: %s\n",
			color.RedString("error:"), args[0], line, col, e.Message)
	}
	return fmt.Errorf("%d parse error(s)", len(tree.Errors))
}

// checkVersion classifies the OPENQASM header against the supported major
// version. The header literal is opaque to the tree; semver does the
// comparison here.
func checkVersion(root *syntax.Node) {
	file, ok := ast.CastSourceFile(root)
	if !ok {
		return
	}
	vs, ok := file.Version()
	if !ok {
		logrus.Debug("no OPENQASM version header")
		return
	}
	v, ok := vs.Version()
	if !ok {
		return
	}
	canonical := "v" + v.Text()
	if !semver.IsValid(canonical) {
		logrus.WithField("version", v.Text()).Warn("unparsable OPENQASM version")
		return
	}
	if semver.Major(canonical) != "v3" {
		logrus.WithField("version", v.Text()).Warn("unsupported OPENQASM major version")
	}
}

func runKinds(cmd *cobra.Command, args []string) error {
	g, err := grammar.Load()
	if err != nil {
		return err
	}
	if err := grammar.Validate(g, grammar.DefaultKinds); err != nil {
		return err
	}
	kinds := grammar.DefaultKinds
	for _, p := range kinds.Punct {
		fmt.Fprintf(cmd.OutOrStdout(), "punct      %-4s %s\n", p[0], p[1])
	}
	for _, k := range kinds.Keywords {
		fmt.Fprintf(cmd.OutOrStdout(), "keyword    %s\n", k)
	}
	for _, k := range kinds.ContextualKeywords {
		fmt.Fprintf(cmd.OutOrStdout(), "contextual %s\n", k)
	}
	for _, k := range kinds.Literals {
		fmt.Fprintf(cmd.OutOrStdout(), "literal    %s\n", k)
	}
	for _, k := range kinds.Named {
		fmt.Fprintf(cmd.OutOrStdout(), "token      %s\n", k)
	}
	return nil
}

// lineCol converts a byte offset into one-based line and column numbers.
func lineCol(source []byte, offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
