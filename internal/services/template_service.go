package services

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/Sugamrai0/AIML/internal/models"
)

//go:embed data/templates.yaml
var templatesYAML []byte

// TemplateService serves the static learning-path templates.
type TemplateService struct {
	templates []models.Template
}

func NewTemplateService() (*TemplateService, error) {
	return newTemplateService(templatesYAML)
}

func newTemplateService(raw []byte) (*TemplateService, error) {
	var doc struct {
		Templates []models.Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for i, t := range doc.Templates {
		if t.Name == "" || t.Duration == "" {
			return nil, fmt.Errorf("template %d: name and duration are required", i)
		}
	}
	return &TemplateService{templates: doc.Templates}, nil
}

// List returns a copy of every template in catalog order.
func (s *TemplateService) List() []models.Template {
	out := make([]models.Template, len(s.templates))
	for i, t := range s.templates {
		t.Focus = slices.Clone(t.Focus)
		out[i] = t
	}
	return out
}
