package learningpath

import (
	"fmt"
	"strings"

	"github.com/Sugamrai0/AIML/internal/models"
)

const successTips = `
### Success Tips
- Follow the phases in order for optimal learning progression
- Practice with real projects alongside theoretical learning
- Join AI/ML communities for support and networking
- Build a portfolio showcasing your projects
- Stay updated with latest AI developments and tools

### Next Steps After Completion
- Advanced specialization in your area of interest
- Contribute to open-source AI projects
- Consider AI/ML certifications
- Build and deploy your own AI applications
`

// Render formats a composed path as a markdown narrative. Experience level
// and time commitment are echoed verbatim.
func Render(tags []models.FocusTag, level models.ExperienceLevel, timeCommitment string, phases []models.Phase, totalDuration string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n## Personalized Learning Path: %s\n\n", HumanizeTags(tags))
	b.WriteString("### Overview\n")
	fmt.Fprintf(&b, "Based on your goals and %s experience level, this learning path is designed for %s commitment and will take approximately %s to complete.\n\n",
		level, timeCommitment, totalDuration)
	b.WriteString("### Learning Journey\n")

	for i, p := range phases {
		fmt.Fprintf(&b, "\n**Phase %d: %s** (%s)\n%s\n\nKey Skills: %s\n",
			i+1, p.Title, p.Duration, p.Description, strings.Join(p.SkillsGained, ", "))
	}

	b.WriteString(successTips)
	return b.String()
}

// HumanizeTags turns ["machine_learning", "ai_frameworks"] into
// "Machine Learning, Ai Frameworks".
func HumanizeTags(tags []models.FocusTag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = humanize(string(t))
	}
	return strings.Join(names, ", ")
}

func humanize(tag string) string {
	words := strings.Fields(strings.ReplaceAll(tag, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
