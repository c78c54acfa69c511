package models

/*
Focus area and experience level constants used throughout the codebase.
Centralizing these avoids magic strings in the classifier, the phase rules and the handlers.
*/

// FocusTag is a topical category inferred from free-text goals.
type FocusTag string

// Focus tags, in classifier priority order.
const (
	FocusMachineLearning FocusTag = "machine_learning"
	FocusDeepLearning    FocusTag = "deep_learning"
	FocusProgramming     FocusTag = "programming"
	FocusDataScience     FocusTag = "data_science"
	FocusWebDevelopment  FocusTag = "web_development"
	FocusAIFrameworks    FocusTag = "ai_frameworks"
)

// ExperienceLevel is supplied by the caller. Values outside the known set are
// accepted as-is.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
)

// Request defaults shared by the CLI, the HTTP layer and config.
const (
	DefaultExperienceLevel = LevelBeginner
	DefaultTimeCommitment  = "3-5 hours/week"
	DefaultLearningStyle   = "mixed"
)
