package models

import "time"

// Phase is one fixed block of a learning curriculum.
type Phase struct {
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Duration     string   `json:"duration" yaml:"duration"` // "<low>-<high> weeks"
	Resources    []string `json:"resources" yaml:"resources"`
	SkillsGained []string `json:"skills_gained" yaml:"skills_gained"`
}

// LearningPath is the per-request result of the generation pipeline.
// It is never persisted.
type LearningPath struct {
	LearningPath  string     `json:"learning_path"`
	Phases        []Phase    `json:"phases"`
	TotalDuration string     `json:"total_duration"`
	Difficulty    string     `json:"difficulty"`
	FocusAreas    []FocusTag `json:"focus_areas"`
}

// Template is a pre-described curriculum archetype. Templates are static data
// and have no relation to the generation pipeline.
type Template struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Duration    string   `json:"duration" yaml:"duration"`
	Focus       []string `json:"focus" yaml:"focus"`
}

// Document is the body the Q&A responder answers against.
type Document struct {
	Filename   string    `json:"filename"`
	Content    string    `json:"-"`
	UploadTime time.Time `json:"upload_time"`
	Size       int64     `json:"size"`
	Processed  bool      `json:"processed"`
}

// QAResponse is the answer to a single question about the current document.
type QAResponse struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Sources  []string `json:"sources,omitempty"`
}
