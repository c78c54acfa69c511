package learningpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sugamrai0/AIML/internal/models"
)

// TotalDuration sums the lower bound of each phase duration into S and
// returns "S-(S+len(phases)) weeks". The upper bound is a heuristic, not a sum
// of upper bounds.
func TotalDuration(phases []models.Phase) (string, error) {
	total := 0
	for _, p := range phases {
		low, err := lowWeeks(p.Duration)
		if err != nil {
			return "", fmt.Errorf("phase %q: %w", p.Title, err)
		}
		total += low
	}
	return fmt.Sprintf("%d-%d weeks", total, total+len(phases)), nil
}

func lowWeeks(duration string) (int, error) {
	first, _, _ := strings.Cut(duration, "-")
	low, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrMalformedDuration, duration)
	}
	return low, nil
}
