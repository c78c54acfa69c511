package learningpath

import (
	"github.com/Sugamrai0/AIML/internal/models"
	"github.com/Sugamrai0/AIML/pkg/categorizer"
)

// focusRules is the classifier lookup table. Order is priority order.
var focusRules = []categorizer.Rule{
	{Tag: string(models.FocusMachineLearning), Phrases: []string{"machine learning", "ml", "ai", "artificial intelligence"}},
	{Tag: string(models.FocusDeepLearning), Phrases: []string{"deep learning", "neural networks", "dl"}},
	{Tag: string(models.FocusProgramming), Phrases: []string{"python", "programming", "code"}},
	{Tag: string(models.FocusDataScience), Phrases: []string{"data science", "data analysis", "data"}},
	{Tag: string(models.FocusWebDevelopment), Phrases: []string{"web", "api", "backend"}},
	{Tag: string(models.FocusAIFrameworks), Phrases: []string{"flowise", "langchain", "llm"}},
}

var focusClassifier = categorizer.NewKeywordCategorizer(focusRules, string(models.FocusMachineLearning))

// Classify maps free-text goals to an ordered, non-empty set of focus tags.
// Tags come back in priority order; with no match the result is exactly
// [machine_learning].
func Classify(goals string) []models.FocusTag {
	matched := focusClassifier.Match(goals)
	tags := make([]models.FocusTag, len(matched))
	for i, m := range matched {
		tags[i] = models.FocusTag(m)
	}
	return tags
}

// FocusTags lists every tag the classifier can produce, in priority order.
func FocusTags() []models.FocusTag {
	tags := make([]models.FocusTag, len(focusRules))
	for i, r := range focusRules {
		tags[i] = models.FocusTag(r.Tag)
	}
	return tags
}
