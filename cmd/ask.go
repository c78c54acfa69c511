package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sugamrai0/AIML/internal/clix"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask a question about the loaded document",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := clix.ParseOutputFormat(cmd.Flags())
		if err != nil {
			return err
		}
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := appInstance.QAService.Ask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to answer question: %w", err)
		}

		out := cmd.OutOrStdout()
		if format == clix.FormatJSON {
			return writeJSON(out, resp)
		}
		fmt.Fprintf(out, "%s %s\n\n%s\n", color.CyanString("Q:"), resp.Question, resp.Answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringP("format", "f", clix.FormatText, "Output format: text or json")
}
