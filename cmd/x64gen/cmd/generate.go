package cmd

import (
	"fmt"
	"os"

	"github.com/corewave/x64asm/internal/x64gen"
	"github.com/corewave/x64asm/internal/x64table"
	"github.com/spf13/cobra"
)

var (
	generatePkg string
	generateOut string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	GroupID: "codegen",
	Short:   "Generate the x64 package's instruction sources from internal/x64table.",
	Long:    `Generate runs the code generator over the current instruction table and writes the result to a file, or to stdout if --out is omitted.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd); err != nil {
			cmd.PrintErrln("Error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().StringVar(&generatePkg, "pkg", "x64", "package name the generated file declares")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output file path (defaults to stdout)")
}

// runGenerate drives the generator against internal/x64table.List() and
// writes the result to --out, reporting every malformed table entry the
// generator accumulated rather than just the first one.
func runGenerate(cmd *cobra.Command) error {
	g := x64gen.New(x64table.List(), generatePkg)
	src, err := g.Generate()
	if err != nil {
		for _, e := range g.Errors() {
			cmd.PrintErrln(e.String())
		}
		return fmt.Errorf("generation failed with %d error(s)", len(g.Errors()))
	}

	if generateOut == "" {
		_, err := cmd.OutOrStdout().Write([]byte(src))
		return err
	}
	return os.WriteFile(generateOut, []byte(src), 0o644)
}
