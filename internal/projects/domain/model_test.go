package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_DecodesBothShapes(t *testing.T) {
	raw := `{
		"features": [
			"User authentication",
			{"title": "Recipe search", "description": "Full-text search", "priority": "high"},
			{"name": "Ratings", "complexity": "low"}
		]
	}`

	var a ProjectAnalysis
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	require.Len(t, a.Features, 3)

	assert.Equal(t, Item{Title: "User authentication"}, a.Features[0])
	assert.True(t, a.Features[0].IsPlain())

	assert.Equal(t, "Recipe search", a.Features[1].Title)
	assert.Equal(t, "high", a.Features[1].Priority)
	assert.Equal(t, "Recipe search: Full-text search", a.Features[1].String())

	assert.Equal(t, "Ratings", a.Features[2].Title)
	assert.Equal(t, "low", a.Features[2].Complexity)
}

func TestItem_EncodeKeepsShape(t *testing.T) {
	b, err := json.Marshal([]Item{
		{Title: "Start with MVP"},
		{Title: "Hire", Timeframe: "Q3", ImplementationSteps: []string{"post role"}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["Start with MVP", {"title":"Hire","timeframe":"Q3","implementationSteps":["post role"]}]`, string(b))

	var back []Item
	require.NoError(t, json.Unmarshal(b, &back))
	again, err := json.Marshal(back)
	require.NoError(t, err)
	assert.JSONEq(t, string(b), string(again))
}

func TestItem_ScalarsReadAsText(t *testing.T) {
	var it Item
	require.NoError(t, json.Unmarshal([]byte(`42`), &it))
	assert.Equal(t, "42", it.Title)

	require.NoError(t, json.Unmarshal([]byte(`{"title":"Search","priority":1,"implementationSteps":["index",2]}`), &it))
	assert.Equal(t, Item{Title: "Search", Priority: "1", ImplementationSteps: []string{"index", "2"}}, it)

	assert.Error(t, json.Unmarshal([]byte(`{"title":`), &it))
}

func TestArtifacts_KeepDocument(t *testing.T) {
	const doc = `{"score": "85", "pillars": [{"name": "Market Viability", "score": 72, "marketSize": "$2B"}], "verdict": "go"}`

	var a ProjectAnalysis
	require.NoError(t, json.Unmarshal([]byte(doc), &a))
	assert.Equal(t, 85.0, a.Score)
	assert.Equal(t, 72.0, a.Pillars[0].Score)
	assert.JSONEq(t, doc, string(a.Raw()))

	b, err := json.Marshal(&Project{ID: "x", Analysis: &a})
	require.NoError(t, err)
	var back struct {
		Analysis json.RawMessage `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(b, &back))
	assert.JSONEq(t, doc, string(back.Analysis))

	var k KanbanData
	require.NoError(t, json.Unmarshal([]byte(`{"tasks":[{"id":"1","estimatedHours":"6-8","owner":"ana"}]}`), &k))
	assert.Equal(t, "1", k.Tasks[0].ID)
	assert.Contains(t, string(k.Raw()), `"owner":"ana"`)

	var w WorkflowData
	require.NoError(t, json.Unmarshal([]byte(`{"schemaDiagram":{"entities":[{"name":"Recipe","position":"top"}]}}`), &w))
	assert.Equal(t, "Recipe", w.SchemaDiagram.Entities[0].Name)

	for _, notObject := range []string{`[]`, `"text"`, `12`} {
		assert.Error(t, json.Unmarshal([]byte(notObject), &ProjectAnalysis{}), notObject)
		assert.Error(t, json.Unmarshal([]byte(notObject), &KanbanData{}), notObject)
		assert.Error(t, json.Unmarshal([]byte(notObject), &WorkflowData{}), notObject)
	}
}

func TestArtifacts_BuiltInCodeMarshalFields(t *testing.T) {
	a := ProjectAnalysis{Score: 60, Features: Items("Search")}
	assert.Nil(t, a.Raw())
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score":60,"pillars":null,"advantages":null,"disadvantages":null,"features":["Search"],"recommendations":null}`, string(b))
}

func TestNormalizeID(t *testing.T) {
	id := NewID()
	got, err := NormalizeID(id)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = NormalizeID("6F9619FF-8B86-D011-B42D-00CF4FC964FF")
	require.NoError(t, err)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00cf4fc964ff", got)

	for _, bad := range []string{"", "abc", "507f1f77bcf86cd799439011", "6f9619ff-8b86-d011-b42d-00cf4fc964fz"} {
		_, err := NormalizeID(bad)
		assert.True(t, errors.Is(err, ErrInvalidID), "expected invalid id for %q", bad)
	}
}

func TestProject_Apply(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	p := &Project{
		ID:          NewID(),
		Title:       "Recipe Sharing App",
		Description: "A platform for home cooks",
		Analysis:    &ProjectAnalysis{Score: 70},
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	kanban := &KanbanData{Pipelines: []Pipeline{{ID: "todo", Name: "To Do", Color: "#blue"}}}
	later := created.Add(time.Minute)
	p.Apply(ProjectUpdate{Kanban: kanban}, later)

	assert.Equal(t, "Recipe Sharing App", p.Title)
	assert.Equal(t, 70.0, p.Analysis.Score)
	assert.Same(t, kanban, p.Kanban)
	assert.Nil(t, p.Workflow)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, later, p.UpdatedAt)

	// A clock behind createdAt never moves updatedAt before it.
	p.Apply(ProjectUpdate{}, created.Add(-time.Hour))
	assert.Equal(t, created, p.UpdatedAt)
}
