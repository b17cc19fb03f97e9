package domain

import (
	"bytes"
	"encoding/json"
)

// ProjectAnalysis is the scored multi-pillar evaluation of a project pitch.
// Any JSON object decodes into it; off-shape fields are left out of the typed
// view but kept in the document.
type ProjectAnalysis struct {
	document

	Score             float64        `json:"score"`
	Pillars           []Pillar       `json:"pillars"`
	Advantages        []Item         `json:"advantages"`
	Disadvantages     []Item         `json:"disadvantages"`
	Features          []Item         `json:"features"`
	Recommendations   []Item         `json:"recommendations"`
	TechnicalAnalysis map[string]any `json:"technicalAnalysis,omitempty"`
	MarketAnalysis    map[string]any `json:"marketAnalysis,omitempty"`
	FinancialAnalysis map[string]any `json:"financialAnalysis,omitempty"`
}

func (a *ProjectAnalysis) UnmarshalJSON(b []byte) error {
	obj, err := compactObject(b)
	if err != nil {
		return err
	}
	type view ProjectAnalysis
	var v view
	if err := lenient(json.Unmarshal(obj, &v)); err != nil {
		return err
	}
	v.Score = looseScore(obj, v.Score)
	v.raw = obj
	*a = ProjectAnalysis(v)
	return nil
}

func (a ProjectAnalysis) MarshalJSON() ([]byte, error) {
	if a.raw != nil {
		return a.raw, nil
	}
	type view ProjectAnalysis
	return json.Marshal(view(a))
}

// Pillar is one scored dimension. Models attach pillar-specific keys such as
// marketSize; those live only in the enclosing analysis document.
type Pillar struct {
	Name           string          `json:"name"`
	Score          float64         `json:"score"`
	Feedback       string          `json:"feedback"`
	Strengths      []Item          `json:"strengths,omitempty"`
	Challenges     []Item          `json:"challenges,omitempty"`
	RiskAssessment *RiskAssessment `json:"riskAssessment,omitempty"`
	Metrics        map[string]any  `json:"metrics,omitempty"`
}

func (p *Pillar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*p = Pillar{Name: looseText(v)}
		return nil
	}
	type view Pillar
	var v view
	if err := lenient(json.Unmarshal(b, &v)); err != nil {
		return err
	}
	v.Score = looseScore(b, v.Score)
	*p = Pillar(v)
	return nil
}

type RiskAssessment struct {
	Level       string   `json:"level"`
	Factors     []string `json:"factors,omitempty"`
	Mitigations []string `json:"mitigations,omitempty"`
}

// Item is one entry of an analysis list. Older analyses carry plain strings,
// newer ones carry records; both decode into Item, and scalar fields written
// as numbers are read as text.
type Item struct {
	Title               string   `json:"title"`
	Description         string   `json:"description,omitempty"`
	Priority            string   `json:"priority,omitempty"`
	Complexity          string   `json:"complexity,omitempty"`
	Impact              string   `json:"impact,omitempty"`
	ImplementationSteps []string `json:"implementationSteps,omitempty"`
	Timeframe           string   `json:"timeframe,omitempty"`
}

type itemRecord Item

func (i *Item) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	m, ok := v.(map[string]any)
	if !ok {
		*i = Item{Title: looseText(v)}
		return nil
	}

	*i = Item{
		Title:       looseText(m["title"]),
		Description: looseText(m["description"]),
		Priority:    looseText(m["priority"]),
		Complexity:  looseText(m["complexity"]),
		Impact:      looseText(m["impact"]),
		Timeframe:   looseText(m["timeframe"]),
	}
	if i.Title == "" {
		i.Title = looseText(m["name"])
	}
	if steps, ok := m["implementationSteps"].([]any); ok {
		for _, step := range steps {
			i.ImplementationSteps = append(i.ImplementationSteps, looseText(step))
		}
	}
	return nil
}

// MarshalJSON writes title-only items back as plain strings so that
// legacy analyses keep their shape.
func (i Item) MarshalJSON() ([]byte, error) {
	if i.IsPlain() {
		return json.Marshal(i.Title)
	}
	return json.Marshal(itemRecord(i))
}

func (i Item) IsPlain() bool {
	return i.Description == "" && i.Priority == "" && i.Complexity == "" &&
		i.Impact == "" && len(i.ImplementationSteps) == 0 && i.Timeframe == ""
}

func (i Item) String() string {
	if i.Description == "" {
		return i.Title
	}
	if i.Title == "" {
		return i.Description
	}
	return i.Title + ": " + i.Description
}

// Items builds plain items from strings.
func Items(titles ...string) []Item {
	out := make([]Item, 0, len(titles))
	for _, t := range titles {
		out = append(out, Item{Title: t})
	}
	return out
}
