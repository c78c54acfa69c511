package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sugamrai0/AIML/internal/app"
	"github.com/Sugamrai0/AIML/internal/config"
	"github.com/Sugamrai0/AIML/internal/inputprocessor"
	"github.com/Sugamrai0/AIML/internal/learningpath"
	"github.com/Sugamrai0/AIML/internal/models"
)

var rootCmd = &cobra.Command{
	Use:   "aiml",
	Short: "AI microservices: learning paths, document Q&A and summarization",
	Long: `aiml generates structured AI/ML learning paths from free-text goals and
serves them, together with document Q&A and text summarization, over HTTP.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cfg, inputprocessor.New())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type contextKey string

const appKey contextKey = "app"

// GetAppFromContext returns the App stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and verify every composable learning path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}
		out := cmd.OutOrStdout()
		cfg := appInstance.Config

		fmt.Fprintf(out, "Listen address: %s:%s (gin %s mode)\n", cfg.Server.Addr, cfg.Server.Port, cfg.Server.Mode)
		fmt.Fprintf(out, "Document Q&A: %s\n", enabledString(cfg.QA.Enabled))
		fmt.Fprintf(out, "Summarization: %s\n", enabledString(cfg.Summarization.Enabled))
		fmt.Fprintf(out, "Templates loaded: %d\n", len(appInstance.TemplateService.List()))

		fmt.Fprintln(out, "Checking phase catalog durations...")
		checked, failures := checkCompositions()
		for _, f := range failures {
			fmt.Fprintf(out, "  - %s: %v\n", color.RedString("ERROR"), f)
		}
		if len(failures) > 0 {
			return fmt.Errorf("%d of %d compositions have malformed durations", len(failures), checked)
		}
		fmt.Fprintf(out, "%s %d compositions aggregate cleanly.\n", color.GreenString("OK"), checked)
		return nil
	},
}

// checkCompositions runs TotalDuration over every level and focus tag subset.
func checkCompositions() (int, []error) {
	tags := learningpath.FocusTags()
	levels := []models.ExperienceLevel{models.LevelBeginner, models.LevelIntermediate, "unrecognized"}

	var failures []error
	checked := 0
	for _, level := range levels {
		for mask := 0; mask < 1<<len(tags); mask++ {
			var subset []models.FocusTag
			for i, tag := range tags {
				if mask&(1<<i) != 0 {
					subset = append(subset, tag)
				}
			}
			checked++
			if _, err := learningpath.TotalDuration(learningpath.Compose(level, subset)); err != nil {
				failures = append(failures, fmt.Errorf("level %s, tags %v: %w", level, subset, err))
			}
		}
	}
	return checked, failures
}

func enabledString(enabled bool) string {
	if enabled {
		return color.GreenString("enabled")
	}
	return color.YellowString("disabled")
}
