package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Sugamrai0/AIML/internal/services"
)

// Output formats accepted by --format.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

func ParseOutputFormat(flags *pflag.FlagSet) (string, error) {
	format, _ := flags.GetString("format")
	switch format = strings.ToLower(strings.TrimSpace(format)); format {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid --format %q (want text, table or json)", format)
	}
}

// ParseSuggestParams joins the positional args into the goals text and reads
// --level, --time and --style. Unset flags stay empty so the service defaults
// apply.
func ParseSuggestParams(flags *pflag.FlagSet, args []string) services.SuggestParams {
	level, _ := flags.GetString("level")
	commitment, _ := flags.GetString("time")
	style, _ := flags.GetString("style")
	return services.SuggestParams{
		Goals:                  strings.Join(args, " "),
		ExperienceLevel:        strings.ToLower(strings.TrimSpace(level)),
		TimeCommitment:         strings.TrimSpace(commitment),
		PreferredLearningStyle: strings.TrimSpace(style),
	}
}

// ParseList reads a comma-separated flag.
func ParseList(flags *pflag.FlagSet, name string) []string {
	raw, _ := flags.GetString(name)
	var items []string
	if raw != "" {
		// Trim space and filter out empty strings in one pass
		for _, item := range strings.Split(raw, ",") {
			trimmed := strings.TrimSpace(item)
			if trimmed != "" {
				items = append(items, trimmed)
			}
		}
	}
	return items
}
