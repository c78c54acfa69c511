package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Sugamrai0/AIML/internal/clix"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the predefined learning path templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := clix.ParseOutputFormat(cmd.Flags())
		if err != nil {
			return err
		}
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		templates := appInstance.TemplateService.List()
		out := cmd.OutOrStdout()
		if format == clix.FormatJSON {
			return writeJSON(out, map[string]any{"templates": templates})
		}
		if len(templates) == 0 {
			fmt.Fprintln(out, "No templates found.")
			return nil
		}

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Name", "Duration", "Focus", "Description"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, t := range templates {
			table.Append([]string{t.Name, t.Duration, strings.Join(t.Focus, ", "), t.Description})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.Flags().StringP("format", "f", clix.FormatTable, "Output format: table or json")
}
