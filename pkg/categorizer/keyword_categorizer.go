package categorizer

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule maps a tag to the phrases that trigger it.
type Rule struct {
	Tag     string
	Phrases []string
}

// KeywordCategorizer implements ContentCategorizer with a fixed, ordered rule
// table. Every rule is tested independently and matched tags are reported in
// rule order. A phrase matches when it occurs case-insensitively in the text
// starting at a word boundary, so "ai" matches "ai-powered" and "AI" but not
// "langchain".
//
// A KeywordCategorizer is immutable after construction and safe for
// concurrent use.
type KeywordCategorizer struct {
	rules    []Rule
	fallback []string
}

// NewKeywordCategorizer builds a categorizer from rules. fallback is returned
// when no rule matches; it may be empty.
func NewKeywordCategorizer(rules []Rule, fallback ...string) *KeywordCategorizer {
	owned := make([]Rule, 0, len(rules))
	for _, r := range rules {
		phrases := make([]string, 0, len(r.Phrases))
		for _, p := range r.Phrases {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
				phrases = append(phrases, p)
			}
		}
		owned = append(owned, Rule{Tag: r.Tag, Phrases: phrases})
	}
	return &KeywordCategorizer{
		rules:    owned,
		fallback: append([]string(nil), fallback...),
	}
}

// Match returns the tags whose rules fire for text, in rule order. Each tag
// appears at most once. The fallback is returned if nothing fires.
func (c *KeywordCategorizer) Match(text string) []string {
	tags, _ := c.match(text)
	return tags
}

// Categorize implements ContentCategorizer. Title and body are matched
// together; ExistingTags are ignored.
func (c *KeywordCategorizer) Categorize(ctx context.Context, req CategorizationRequest) (CategorizationResult, error) {
	if err := ctx.Err(); err != nil {
		return CategorizationResult{}, err
	}
	text := req.Body
	if req.Title != "" {
		text = req.Title + "\n" + req.Body
	}

	tags, matched := c.match(text)
	res := CategorizationResult{SuggestedTags: tags}
	if len(tags) > 0 {
		res.SuggestedCategory = tags[0]
	}
	if matched {
		res.Confidence = 1.0
	}
	return res, nil
}

func (c *KeywordCategorizer) match(text string) ([]string, bool) {
	lower := strings.ToLower(text)
	var tags []string
	seen := make(map[string]struct{}, len(c.rules))
	for _, r := range c.rules {
		if _, dup := seen[r.Tag]; dup {
			continue
		}
		for _, p := range r.Phrases {
			if containsAtWordStart(lower, p) {
				tags = append(tags, r.Tag)
				seen[r.Tag] = struct{}{}
				break
			}
		}
	}
	if len(tags) == 0 {
		return append([]string(nil), c.fallback...), false
	}
	return tags, true
}

func containsAtWordStart(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], phrase)
		if i < 0 {
			return false
		}
		pos := offset + i
		if pos == 0 {
			return true
		}
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
		offset = pos + 1
	}
	return false
}

var _ ContentCategorizer = (*KeywordCategorizer)(nil)
