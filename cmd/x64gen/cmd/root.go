package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "x64gen",
	Short: "x64asm's instruction table code generator",
	Long:  `x64gen turns internal/x64table's instruction list into the x64 package's generated sources.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "codegen",
		Title: "Code generation",
	})

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
}
