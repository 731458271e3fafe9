package analysis

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeFullPayload(t *testing.T) {
	raw := []byte(`{
		"pointAverage": 7.5, "pointDS": "6", "pointGM": 8.25, "pointGPT": 7,
		"competitor_listDP": [{"company_name": "A", "company_domain": "a.com", "company_score": 5}],
		"competitor_listGM": [{"company_name": "A", "company_score": 9}, {"company_name": "B", "company_score": "3"}],
		"competitor_listGPT": [{"company_name": "B", "company_score": " 7 "}],
		"checklist": [{"name": "x", "category": "SEO", "weight": 0.5, "score": 1}],
		"companyDomain": "acme.com"
	}`)
	rec, diag, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(diag.Warnings) != 0 || diag.DroppedCompetitors != 0 || diag.DroppedChecklist != 0 {
		t.Fatalf("expected clean diagnostics, got %+v", diag)
	}
	if rec.Score(ModelDeepSeek) != 6 || rec.Score(ModelAverage) != 7.5 {
		t.Fatalf("unexpected scores: %+v", rec.Scores)
	}
	if rec.CompanyDomain != "acme.com" {
		t.Fatalf("expected companyDomain, got %q", rec.CompanyDomain)
	}
	if got := rec.Competitors[ModelChatGPT][0].Score; got != 7 {
		t.Fatalf("expected padded competitor score to parse, got %v", got)
	}
	wantGM := []CompetitorEntry{{Name: "A", Score: 9}, {Name: "B", Score: 3}}
	if diff := cmp.Diff(wantGM, rec.Competitors[ModelGemini]); diff != "" {
		t.Fatalf("gemini list (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ChecklistItem{{Name: "x", Category: "SEO", Weight: 0.5, Score: 1}}, rec.Checklist); diff != "" {
		t.Fatalf("checklist (-want +got):\n%s", diff)
	}
}

func TestDecodeArrayWrapped(t *testing.T) {
	rec, _, err := Decode([]byte(`[{"pointGPT": 3.5}]`))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if rec.Score(ModelChatGPT) != 3.5 || rec.Score(ModelGemini) != 0 {
		t.Fatalf("unexpected scores: %+v", rec.Scores)
	}
	if len(rec.Competitors[ModelDeepSeek]) != 0 || len(rec.Checklist) != 0 {
		t.Fatalf("absent arrays must decode empty: %+v", rec)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{name: "blank", raw: "  ", want: ErrEmptyPayload},
		{name: "null", raw: "null", want: ErrEmptyPayload},
		{name: "empty array", raw: "[]", want: ErrEmptyPayload},
		{name: "no scores", raw: `{"checklist": []}`, want: ErrNoScores},
	}
	for _, tc := range cases {
		_, _, err := Decode([]byte(tc.raw))
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	if _, _, err := Decode([]byte(`"text"`)); err == nil {
		t.Fatalf("expected error for scalar payload")
	}
	if _, _, err := Decode([]byte(`{not json`)); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

func TestDecodeNullScorePresent(t *testing.T) {
	rec, _, err := Decode([]byte(`{"pointAverage": null}`))
	if err != nil {
		t.Fatalf("a null score still marks the analysis present: %v", err)
	}
	if FormatScore(rec.Score(ModelAverage)) != "0.00" {
		t.Fatalf("expected 0.00, got %v", rec.Score(ModelAverage))
	}
	if !rec.HasScore(ModelAverage) || rec.HasScore(ModelGemini) {
		t.Fatalf("unexpected presence set: %v", rec.Present)
	}
}

func TestDecodeDropsMalformedEntries(t *testing.T) {
	raw := []byte(`{
		"pointAverage": 1,
		"competitor_listDP": [
			"not an object",
			{"company_domain": "nameless.com", "company_score": 4},
			{"company_name": "", "company_score": 4},
			{"company_name": "Kept", "company_score": "oops"},
			{"company_name": 42, "company_score": 2}
		],
		"competitor_listGM": "not a list",
		"checklist": [
			{"category": "SEO"},
			{"name": "ok", "weight": "1.5"},
			7
		]
	}`)
	rec, diag, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	want := []CompetitorEntry{{Name: "Kept", Score: 0}, {Name: "42", Score: 2}}
	if diff := cmp.Diff(want, rec.Competitors[ModelDeepSeek]); diff != "" {
		t.Fatalf("deepseek list (-want +got):\n%s", diff)
	}
	if diag.DroppedCompetitors != 3 {
		t.Fatalf("expected 3 dropped competitors, got %d", diag.DroppedCompetitors)
	}
	if diag.DroppedChecklist != 2 {
		t.Fatalf("expected 2 dropped checklist items, got %d", diag.DroppedChecklist)
	}
	if len(rec.Checklist) != 1 || rec.Checklist[0].Weight != 1.5 || rec.Checklist[0].Category != "" {
		t.Fatalf("unexpected checklist: %+v", rec.Checklist)
	}
	if len(diag.Warnings) == 0 {
		t.Fatalf("expected schema warnings for malformed fields")
	}
}

func TestParseModel(t *testing.T) {
	for in, want := range map[string]Model{"DP": ModelDeepSeek, "gemini": ModelGemini, " gpt ": ModelChatGPT, "airo": ModelAverage} {
		got, ok := ParseModel(in)
		if !ok || got != want {
			t.Fatalf("ParseModel(%q) = %v,%v want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseModel("claude"); ok {
		t.Fatalf("unknown model must not parse")
	}
	if ModelChatGPT.Label() != "ChatGPT" {
		t.Fatalf("unexpected label %q", ModelChatGPT.Label())
	}
}
