package report

import (
	"github.com/mwiater/airo/internal/analysis"
)

// ViewModel is the display form of a record. Scores are pre-formatted.
type ViewModel struct {
	AverageScore        string           `json:"averageScore"`
	PerModelScores      PerModelScores   `json:"perModelScores"`
	Competitors         []CompetitorView `json:"competitors"`
	ChecklistByCategory []CategoryView   `json:"checklistByCategory"`
}

// PerModelScores holds the formatted per-model breakdown.
type PerModelScores struct {
	DS  string `json:"ds"`
	GM  string `json:"gm"`
	GPT string `json:"gpt"`
}

// CompetitorView is one ranked competitor.
type CompetitorView struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Score  string `json:"score"`
}

// CategoryView is one checklist category with its items in input order.
type CategoryView struct {
	Category string          `json:"category"`
	Label    string          `json:"label"`
	Passed   int             `json:"passed"`
	Items    []ChecklistView `json:"items"`
}

// ChecklistView is one checklist item.
type ChecklistView struct {
	Name   string `json:"name"`
	Weight string `json:"weight"`
	Score  string `json:"score"`
	Passed bool   `json:"passed"`
}

func newViewModel(rec analysis.Record, d Derived) ViewModel {
	vm := ViewModel{
		AverageScore: analysis.FormatScore(rec.Score(analysis.ModelAverage)),
		PerModelScores: PerModelScores{
			DS:  analysis.FormatScore(rec.Score(analysis.ModelDeepSeek)),
			GM:  analysis.FormatScore(rec.Score(analysis.ModelGemini)),
			GPT: analysis.FormatScore(rec.Score(analysis.ModelChatGPT)),
		},
		Competitors:         make([]CompetitorView, 0, len(d.Competitors)),
		ChecklistByCategory: make([]CategoryView, 0, len(d.Groups)),
	}
	for _, c := range d.Competitors {
		vm.Competitors = append(vm.Competitors, CompetitorView{
			Name:   c.Name,
			Domain: c.Domain,
			Score:  analysis.FormatScore(c.Score),
		})
	}
	for _, g := range d.Groups {
		cv := CategoryView{
			Category: g.Category,
			Label:    g.Label(),
			Passed:   g.PassedCount(),
			Items:    make([]ChecklistView, 0, len(g.Items)),
		}
		for _, item := range g.Items {
			cv.Items = append(cv.Items, ChecklistView{
				Name:   item.Name,
				Weight: analysis.FormatScore(item.Weight),
				Score:  analysis.FormatScore(item.Score),
				Passed: item.Passed(),
			})
		}
		vm.ChecklistByCategory = append(vm.ChecklistByCategory, cv)
	}
	return vm
}

// ScoreChips returns the chip labels in display order: the composite score
// first, then ChatGPT, Gemini and DeepSeek.
func (vm ViewModel) ScoreChips() []string {
	return []string{
		analysis.ModelAverage.Label() + ": " + vm.AverageScore,
		analysis.ModelChatGPT.Label() + ": " + vm.PerModelScores.GPT,
		analysis.ModelGemini.Label() + ": " + vm.PerModelScores.GM,
		analysis.ModelDeepSeek.Label() + ": " + vm.PerModelScores.DS,
	}
}

// Line renders the competitor the way report rows show it.
func (c CompetitorView) Line() string {
	domain := c.Domain
	if domain == "" {
		domain = "n/a"
	}
	return c.Name + "  (" + domain + ")  • Mentions: " + c.Score
}

// Line renders the checklist item the way report rows show it.
func (c ChecklistView) Line() string {
	return c.Name + "  (Weight: " + c.Weight + ")"
}
