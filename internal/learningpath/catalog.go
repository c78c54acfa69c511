package learningpath

import (
	"slices"

	"github.com/Sugamrai0/AIML/internal/models"
)

// The phase library. Entries are never mutated; callers receive copies.
var (
	phaseFoundation = models.Phase{
		Title:       "Foundation & Prerequisites",
		Description: "Build essential mathematical and programming foundations for AI/ML",
		Duration:    "4-6 weeks",
		Resources: []string{
			"Python Programming Fundamentals",
			"Linear Algebra for ML (Khan Academy)",
			"Statistics and Probability Basics",
			"Pandas and NumPy tutorials",
		},
		SkillsGained: []string{"Python programming", "Basic mathematics", "Data manipulation"},
	}

	phaseMLFundamentals = models.Phase{
		Title:       "Machine Learning Fundamentals",
		Description: "Learn core ML concepts, algorithms, and practical implementation",
		Duration:    "6-8 weeks",
		Resources: []string{
			"Andrew Ng's Machine Learning Course",
			"Scikit-learn documentation and tutorials",
			"Hands-on ML projects with real datasets",
			"Kaggle Learn ML courses",
		},
		SkillsGained: []string{"Supervised/Unsupervised learning", "Model evaluation", "Feature engineering"},
	}

	phaseDeepLearning = models.Phase{
		Title:       "Deep Learning & Neural Networks",
		Description: "Dive into neural networks, deep learning frameworks, and advanced AI",
		Duration:    "8-10 weeks",
		Resources: []string{
			"Deep Learning Specialization (Coursera)",
			"TensorFlow and PyTorch tutorials",
			"CNN and RNN implementation projects",
			"Computer Vision and NLP applications",
		},
		SkillsGained: []string{"Neural network design", "Deep learning frameworks", "AI applications"},
	}

	phaseAIFrameworks = models.Phase{
		Title:       "Modern AI Frameworks & Tools",
		Description: "Master LangChain, Flowise, and production AI development",
		Duration:    "4-6 weeks",
		Resources: []string{
			"LangChain documentation and examples",
			"Flowise tutorial series",
			"Building RAG applications",
			"LLM integration best practices",
		},
		SkillsGained: []string{"LangChain development", "AI workflow design", "Production deployment"},
	}

	phaseAdvancedML = models.Phase{
		Title:       "Advanced ML Techniques",
		Description: "Explore advanced algorithms, ensemble methods, and optimization",
		Duration:    "4-5 weeks",
		Resources: []string{
			"Advanced Scikit-learn techniques",
			"XGBoost and LightGBM mastery",
			"Hyperparameter optimization",
			"MLOps fundamentals",
		},
		SkillsGained: []string{"Advanced algorithms", "Model optimization", "Production workflows"},
	}

	phaseAIApplications = models.Phase{
		Title:       "AI Application Development",
		Description: "Build production-ready AI applications with modern frameworks",
		Duration:    "6-8 weeks",
		Resources: []string{
			"Advanced LangChain patterns",
			"Flowise custom component development",
			"Vector databases and embeddings",
			"API design for AI services",
		},
		SkillsGained: []string{"Advanced AI development", "System architecture", "Production deployment"},
	}

	phaseCapstone = models.Phase{
		Title:       "Capstone Project",
		Description: "Apply your skills in a comprehensive, portfolio-worthy project",
		Duration:    "3-4 weeks",
		Resources: []string{
			"Choose a real-world problem to solve",
			"Implement end-to-end solution",
			"Deploy to cloud platform",
			"Document and present your work",
		},
		SkillsGained: []string{"Project management", "Full-stack AI development", "Portfolio development"},
	}
)

// phaseRule includes Phase when the experience level matches and, if
// Requires is set, the focus tags contain it.
type phaseRule struct {
	Level    models.ExperienceLevel
	Requires models.FocusTag
	Phase    models.Phase
}

// phaseRules are evaluated in order; the order of the output follows it.
var phaseRules = []phaseRule{
	{Level: models.LevelBeginner, Phase: phaseFoundation},
	{Level: models.LevelBeginner, Requires: models.FocusMachineLearning, Phase: phaseMLFundamentals},
	{Level: models.LevelBeginner, Requires: models.FocusDeepLearning, Phase: phaseDeepLearning},
	{Level: models.LevelBeginner, Requires: models.FocusAIFrameworks, Phase: phaseAIFrameworks},
	{Level: models.LevelIntermediate, Phase: phaseAdvancedML},
	{Level: models.LevelIntermediate, Requires: models.FocusAIFrameworks, Phase: phaseAIApplications},
}

func (r phaseRule) applies(level models.ExperienceLevel, tags []models.FocusTag) bool {
	if r.Level != level {
		return false
	}
	return r.Requires == "" || slices.Contains(tags, r.Requires)
}

// PhasesFor returns the conditional phases for level and tags, capstone
// excluded. Unknown levels get no phases.
func PhasesFor(level models.ExperienceLevel, tags []models.FocusTag) []models.Phase {
	var phases []models.Phase
	for _, r := range phaseRules {
		if r.applies(level, tags) {
			phases = append(phases, clonePhase(r.Phase))
		}
	}
	return phases
}

// Capstone returns the phase appended to every composed path.
func Capstone() models.Phase {
	return clonePhase(phaseCapstone)
}

// Catalog returns every phase in the library, capstone last.
func Catalog() []models.Phase {
	phases := make([]models.Phase, 0, len(phaseRules)+1)
	for _, r := range phaseRules {
		phases = append(phases, clonePhase(r.Phase))
	}
	return append(phases, Capstone())
}

func clonePhase(p models.Phase) models.Phase {
	p.Resources = slices.Clone(p.Resources)
	p.SkillsGained = slices.Clone(p.SkillsGained)
	return p
}
