// internal/analysis/types.go
// Package analysis turns a raw visibility analysis payload into the derived
// data a report is built from: formatted scores, a ranked competitor list and
// category-grouped checklist items.
package analysis

import "strings"

// Model identifies one score or competitor source of an analysis.
type Model string

const (
	// ModelAverage is the composite AIRO score across all models.
	ModelAverage Model = "average"
	// ModelDeepSeek is the DeepSeek breakdown.
	ModelDeepSeek Model = "ds"
	// ModelGemini is the Gemini breakdown.
	ModelGemini Model = "gm"
	// ModelChatGPT is the ChatGPT breakdown.
	ModelChatGPT Model = "gpt"
)

// DefaultSourceOrder is the order competitor lists are concatenated in when
// the caller does not supply one. Ties in the ranking follow this order.
var DefaultSourceOrder = []Model{ModelDeepSeek, ModelGemini, ModelChatGPT}

// ParseModel maps a config or flag value onto a Model.
func ParseModel(value string) (Model, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "average", "airo", "avg":
		return ModelAverage, true
	case "ds", "deepseek", "dp":
		return ModelDeepSeek, true
	case "gm", "gemini":
		return ModelGemini, true
	case "gpt", "chatgpt":
		return ModelChatGPT, true
	default:
		return "", false
	}
}

// Label returns the human-readable model name used in reports.
func (m Model) Label() string {
	switch m {
	case ModelAverage:
		return "AIRO"
	case ModelDeepSeek:
		return "DeepSeek"
	case ModelGemini:
		return "Gemini"
	case ModelChatGPT:
		return "ChatGPT"
	default:
		return string(m)
	}
}

// CompetitorEntry is one raw competitor mention from a single model's list.
type CompetitorEntry struct {
	Name   string  `json:"name"`
	Domain string  `json:"domain,omitempty"`
	Score  float64 `json:"score"`
}

// CompetitorRecord is a competitor after merging every source list.
type CompetitorRecord struct {
	Name   string  `json:"name"`
	Domain string  `json:"domain"`
	Score  float64 `json:"score"`
}

// ChecklistItem is a weighted optimization recommendation.
type ChecklistItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	Score    float64 `json:"score"`
}

// Passed reports whether the item counts as satisfied.
func (c ChecklistItem) Passed() bool { return c.Score > 0 }

// UncategorizedLabel is shown for checklist items with an empty category.
const UncategorizedLabel = "Uncategorized"

// CategoryGroup holds the checklist items sharing one category, in input order.
type CategoryGroup struct {
	Category string          `json:"category"`
	Items    []ChecklistItem `json:"items"`
}

// Label returns the display name of the group. The empty category keeps its
// own bucket but is shown as UncategorizedLabel.
func (g CategoryGroup) Label() string {
	if g.Category == "" {
		return UncategorizedLabel
	}
	return g.Category
}

// Record is a decoded analysis. Treat it as read-only once decoded.
type Record struct {
	Scores        map[Model]float64
	Competitors   map[Model][]CompetitorEntry
	Checklist     []ChecklistItem
	CompanyName   string
	CompanyDomain string

	// Present marks the score fields the payload actually carried.
	Present map[Model]bool
}

// Score returns the score for m, or 0 when it is absent.
func (r Record) Score(m Model) float64 {
	return r.Scores[m]
}

// HasScore reports whether the payload carried a score field for m, even a
// null one.
func (r Record) HasScore(m Model) bool {
	return r.Present[m]
}
