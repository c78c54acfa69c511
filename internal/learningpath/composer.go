package learningpath

import "github.com/Sugamrai0/AIML/internal/models"

// Compose selects and orders the phases for level and tags. The capstone is
// always the last element, so the result is never empty.
func Compose(level models.ExperienceLevel, tags []models.FocusTag) []models.Phase {
	return append(PhasesFor(level, tags), Capstone())
}
