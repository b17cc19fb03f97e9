package domain

import "encoding/json"

// KanbanData is the generated task breakdown for a project. Like
// ProjectAnalysis it keeps the document it was decoded from.
type KanbanData struct {
	document

	Pipelines []Pipeline `json:"pipelines"`
	Tasks     []Task     `json:"tasks"`
}

func (k *KanbanData) UnmarshalJSON(b []byte) error {
	obj, err := compactObject(b)
	if err != nil {
		return err
	}
	type view KanbanData
	var v view
	if err := lenient(json.Unmarshal(obj, &v)); err != nil {
		return err
	}
	v.raw = obj
	*k = KanbanData(v)
	return nil
}

func (k KanbanData) MarshalJSON() ([]byte, error) {
	if k.raw != nil {
		return k.raw, nil
	}
	type view KanbanData
	return json.Marshal(view(k))
}

type Pipeline struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Description string   `json:"description,omitempty"`
	WIPLimit    int      `json:"wipLimit,omitempty"`
	Policies    []string `json:"policies,omitempty"`
}

// Task priorities.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

type Task struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Pipeline           string     `json:"pipeline"`
	Priority           string     `json:"priority"`
	EstimatedHours     float64    `json:"estimatedHours"`
	UserStory          string     `json:"userStory"`
	Assignee           string     `json:"assignee,omitempty"`
	Labels             []string   `json:"labels,omitempty"`
	Dependencies       []string   `json:"dependencies,omitempty"`
	AcceptanceCriteria []string   `json:"acceptanceCriteria,omitempty"`
	Subtasks           []Subtask  `json:"subtasks,omitempty"`
	Comments           []Comment  `json:"comments,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	UpdatedAt          string     `json:"updatedAt,omitempty"`
	StoryPoints        float64    `json:"storyPoints,omitempty"`
	BusinessValue      string     `json:"businessValue,omitempty"`
	RiskLevel          string     `json:"riskLevel,omitempty"`
	TestStrategy       string     `json:"testStrategy,omitempty"`
	Resources          []Resource `json:"resources,omitempty"`
}

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Comment struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type,omitempty"`
}
