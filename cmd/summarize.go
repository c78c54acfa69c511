package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sugamrai0/AIML/internal/clix"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file|url|text...>",
	Short: "Summarize a file, a URL or inline text",
	Long: `Summarizes the input with extractive sentence selection. A single
argument naming a readable file or an http(s) URL is loaded first; anything
else is treated as the text itself.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := clix.ParseOutputFormat(cmd.Flags())
		if err != nil {
			return err
		}
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		res, err := appInstance.InputProcessor.Process(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		var summary string
		if res.InputType == "raw" {
			summary, err = appInstance.SummaryService.Summarize(cmd.Context(), res.Body)
		} else {
			summary, err = appInstance.SummaryService.SummarizeDocument(cmd.Context(), res.Filename, res.Body)
		}
		if err != nil {
			return fmt.Errorf("failed to summarize: %w", err)
		}

		out := cmd.OutOrStdout()
		if format == clix.FormatJSON {
			return writeJSON(out, map[string]string{"summary": summary})
		}
		fmt.Fprintln(out, summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().StringP("format", "f", clix.FormatText, "Output format: text or json")
}
