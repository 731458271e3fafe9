package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

var (
	// ErrEmptyPayload is returned when the payload holds no analysis object.
	ErrEmptyPayload = errors.New("analysis payload is empty")
	// ErrNoScores is returned when none of the score fields are present.
	ErrNoScores = errors.New("analysis payload carries no visibility scores")
)

type fieldBinding struct {
	key   string
	model Model
}

var scoreFields = []fieldBinding{
	{key: "pointAverage", model: ModelAverage},
	{key: "pointDS", model: ModelDeepSeek},
	{key: "pointGM", model: ModelGemini},
	{key: "pointGPT", model: ModelChatGPT},
}

var competitorFields = []fieldBinding{
	{key: "competitor_listDP", model: ModelDeepSeek},
	{key: "competitor_listGM", model: ModelGemini},
	{key: "competitor_listGPT", model: ModelChatGPT},
}

type wireCompetitor struct {
	Name   string  `mapstructure:"company_name"`
	Domain string  `mapstructure:"company_domain"`
	Score  float64 `mapstructure:"company_score"`
}

type wireChecklistItem struct {
	Name     string  `mapstructure:"name"`
	Category string  `mapstructure:"category"`
	Weight   float64 `mapstructure:"weight"`
	Score    float64 `mapstructure:"score"`
}

// Diagnostics reports what Decode tolerated while reading a payload.
type Diagnostics struct {
	Warnings           []string
	DroppedCompetitors int
	DroppedChecklist   int
}

// Decode reads an analysis payload. The payload may be an object or an array
// whose first element is the object. Unknown fields are ignored, malformed
// list entries are dropped and counted in the returned Diagnostics.
func Decode(data []byte) (Record, Diagnostics, error) {
	var diag Diagnostics

	payload, err := normalizePayload(data)
	if err != nil {
		return Record{}, diag, err
	}
	diag.Warnings = ValidatePayload(payload)

	present := make(map[Model]bool, len(scoreFields))
	for _, field := range scoreFields {
		if _, ok := payload[field.key]; ok {
			present[field.model] = true
		}
	}
	if len(present) == 0 {
		return Record{}, diag, ErrNoScores
	}

	rec := Record{
		Scores:        make(map[Model]float64, len(scoreFields)),
		Present:       present,
		Competitors:   make(map[Model][]CompetitorEntry, len(competitorFields)),
		CompanyName:   strings.TrimSpace(cast.ToString(payload["companyName"])),
		CompanyDomain: strings.TrimSpace(cast.ToString(payload["companyDomain"])),
	}
	for _, field := range scoreFields {
		rec.Scores[field.model] = ToScore(payload[field.key])
	}

	for _, field := range competitorFields {
		raw, _ := payload[field.key].([]any)
		entries := make([]CompetitorEntry, 0, len(raw))
		for _, item := range raw {
			var wire wireCompetitor
			if !decodeEntry(item, &wire) || strings.TrimSpace(wire.Name) == "" {
				diag.DroppedCompetitors++
				continue
			}
			entries = append(entries, CompetitorEntry{
				Name:   wire.Name,
				Domain: strings.TrimSpace(wire.Domain),
				Score:  wire.Score,
			})
		}
		rec.Competitors[field.model] = entries
	}

	rawChecklist, _ := payload["checklist"].([]any)
	rec.Checklist = make([]ChecklistItem, 0, len(rawChecklist))
	for _, item := range rawChecklist {
		var wire wireChecklistItem
		if !decodeEntry(item, &wire) || strings.TrimSpace(wire.Name) == "" {
			diag.DroppedChecklist++
			continue
		}
		rec.Checklist = append(rec.Checklist, ChecklistItem(wire))
	}

	return rec, diag, nil
}

func normalizePayload(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyPayload
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode analysis payload: %w", err)
	}

	switch v := raw.(type) {
	case nil:
		return nil, ErrEmptyPayload
	case map[string]any:
		return v, nil
	case []any:
		if len(v) == 0 || v[0] == nil {
			return nil, ErrEmptyPayload
		}
		obj, ok := v[0].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("analysis payload array must hold an object, got %T", v[0])
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("analysis payload must be a JSON object, got %T", v)
	}
}

// decodeEntry decodes one list element into out. Scalar fields are coerced
// leniently; only non-object elements fail.
func decodeEntry(item any, out any) bool {
	obj, ok := item.(map[string]any)
	if !ok {
		return false
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(lenientScalarHook),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return false
	}
	return dec.Decode(obj) == nil
}

func lenientScalarHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Float64:
		return ToScore(data), nil
	case reflect.String:
		switch data.(type) {
		case map[string]any, []any:
			return "", nil
		}
		s, err := cast.ToStringE(data)
		if err != nil {
			return "", nil
		}
		return s, nil
	default:
		return data, nil
	}
}
