package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/corewave/x64asm/internal/x64gen"
	"github.com/corewave/x64asm/internal/x64table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	GroupID: "codegen",
	Short:   "List every instruction the table currently defines.",
	Long:    `List prints each table entry's UID, mnemonic, format, and the Builder method that constructs it, for inspection without generating source.`,
	Run: func(cmd *cobra.Command, args []string) {
		runList(cmd)
	},
}

func runList(cmd *cobra.Command) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "UID\tMNEMONIC\tFORMAT\tBUILDER METHOD")
	for _, inst := range x64table.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", inst.UID(), inst.Mnemonic, inst.Format.Name, x64gen.GoTypeName(inst.UID()))
	}
}
