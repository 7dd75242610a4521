package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/veldt-ui/veldt/pkg/testutil"
)

func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List the supported simulated events",
		Long: `List every logical event name Simulate supports, with the native
event type it dispatches and its default bubbles/cancelable flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Event", "Category", "Native Type", "Bubbles", "Cancelable"})
			for _, info := range testutil.EventCatalog() {
				t.AppendRow(table.Row{
					info.Name,
					info.Category.String(),
					info.NativeType,
					info.Bubbles,
					info.Cancelable,
				})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
		},
	}
}
