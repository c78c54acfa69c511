package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Sugamrai0/AIML/internal/clix"
	"github.com/Sugamrai0/AIML/internal/learningpath"
	"github.com/Sugamrai0/AIML/internal/models"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <goals...>",
	Short: "Generate a learning path from free-text goals",
	Long: `Classifies the goals into focus areas, composes the matching phases for
the experience level and prints the resulting learning path.`,
	Example: `  aiml suggest "I want to learn machine learning"
  aiml suggest learn langchain and flowise --level intermediate --format table`,
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

		path, err := appInstance.LearningPathService.Suggest(cmd.Context(), clix.ParseSuggestParams(cmd.Flags(), args))
		if err != nil {
			return fmt.Errorf("failed to generate learning path: %w", err)
		}

		out := cmd.OutOrStdout()
		switch format {
		case clix.FormatJSON:
			return writeJSON(out, path)
		case clix.FormatTable:
			renderPhaseTable(out, path)
		default:
			fmt.Fprintln(out, path.LearningPath)
		}
		return nil
	},
}

func renderPhaseTable(out io.Writer, path *models.LearningPath) {
	fmt.Fprintf(out, "Focus: %s | Level: %s | Total: %s\n\n",
		color.CyanString(learningpath.HumanizeTags(path.FocusAreas)), path.Difficulty, color.GreenString(path.TotalDuration))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Phase", "Duration", "Skills Gained"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, phase := range path.Phases {
		table.Append([]string{
			strconv.Itoa(i + 1),
			phase.Title,
			phase.Duration,
			strings.Join(phase.SkillsGained, ", "),
		})
	}
	table.Render()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringP("level", "l", "", "Experience level: beginner or intermediate (default from config)")
	suggestCmd.Flags().StringP("time", "t", "", "Weekly time commitment, e.g. '10 hours/week' (default from config)")
	suggestCmd.Flags().String("style", "", "Preferred learning style (accepted, not used in generation)")
	suggestCmd.Flags().StringP("format", "f", clix.FormatText, "Output format: text, table or json")
}
