package domain

import "encoding/json"

// WorkflowData holds the three generated diagrams for a project.
type WorkflowData struct {
	document

	TechnicalWorkflow TechnicalWorkflow `json:"technicalWorkflow"`
	UserWorkflow      UserWorkflow      `json:"userWorkflow"`
	SchemaDiagram     SchemaDiagram     `json:"schemaDiagram"`
}

func (w *WorkflowData) UnmarshalJSON(b []byte) error {
	obj, err := compactObject(b)
	if err != nil {
		return err
	}
	type view WorkflowData
	var v view
	if err := lenient(json.Unmarshal(obj, &v)); err != nil {
		return err
	}
	v.raw = obj
	*w = WorkflowData(v)
	return nil
}

func (w WorkflowData) MarshalJSON() ([]byte, error) {
	if w.raw != nil {
		return w.raw, nil
	}
	type view WorkflowData
	return json.Marshal(view(w))
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TechnicalWorkflow struct {
	Nodes []TechnicalNode `json:"nodes"`
	Edges []TechnicalEdge `json:"edges"`
}

type TechnicalNode struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Position Position          `json:"position"`
	Data     TechnicalNodeData `json:"data"`
}

type TechnicalNodeData struct {
	Label              string   `json:"label"`
	Description        string   `json:"description"`
	Details            []string `json:"details"`
	Technologies       []string `json:"technologies"`
	EstimatedTime      string   `json:"estimatedTime"`
	Dependencies       []string `json:"dependencies"`
	Deliverables       []string `json:"deliverables,omitempty"`
	Resources          []string `json:"resources,omitempty"`
	Risks              []string `json:"risks,omitempty"`
	Mitigations        []string `json:"mitigations,omitempty"`
	AcceptanceCriteria []string `json:"acceptanceCriteria,omitempty"`
}

type TechnicalEdge struct {
	ID            string `json:"id"`
	Source        string `json:"source"`
	Target        string `json:"target"`
	Label         string `json:"label"`
	Type          string `json:"type"`
	Condition     string `json:"condition,omitempty"`
	Description   string `json:"description,omitempty"`
	Documentation string `json:"documentation,omitempty"`
}

type UserWorkflow struct {
	Nodes []UserNode `json:"nodes"`
	Edges []UserEdge `json:"edges"`
}

type UserNode struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Position Position     `json:"position"`
	Data     UserNodeData `json:"data"`
}

type UserNodeData struct {
	Label           string   `json:"label"`
	Description     string   `json:"description"`
	UserActions     []string `json:"userActions"`
	SystemResponses []string `json:"systemResponses"`
	PainPoints      []string `json:"painPoints"`
	SuccessMetrics  []string `json:"successMetrics"`
	Persona         string   `json:"persona,omitempty"`
	Needs           []string `json:"needs,omitempty"`
	EmotionalState  string   `json:"emotionalState,omitempty"`
	ConversionGoals []string `json:"conversionGoals,omitempty"`
	Accessibility   []string `json:"accessibility,omitempty"`
	DesignNotes     []string `json:"designNotes,omitempty"`
}

type UserEdge struct {
	ID                string `json:"id"`
	Source            string `json:"source"`
	Target            string `json:"target"`
	Label             string `json:"label"`
	Condition         string `json:"condition,omitempty"`
	Frequency         string `json:"frequency,omitempty"`
	OptimizationNotes string `json:"optimizationNotes,omitempty"`
	FallbackPath      string `json:"fallbackPath,omitempty"`
}

// Relationship kinds used by schema diagrams.
const (
	OneToOne  = "ONE_TO_ONE"
	OneToMany = "ONE_TO_MANY"
	ManyToOne = "MANY_TO_ONE"
)

type SchemaDiagram struct {
	Entities      []Entity             `json:"entities"`
	Relationships []SchemaRelationship `json:"relationships"`
}

type Entity struct {
	Name          string               `json:"name"`
	Fields        []Field              `json:"fields"`
	Relationships []EntityRelationship `json:"relationships"`
	Position      Position             `json:"position"`
}

type Field struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Required     bool     `json:"required"`
	Description  string   `json:"description"`
	Constraints  []string `json:"constraints,omitempty"`
	IsPrimaryKey bool     `json:"isPrimaryKey,omitempty"`
	IsForeignKey bool     `json:"isForeignKey,omitempty"`
	References   string   `json:"references,omitempty"`
}

type EntityRelationship struct {
	Target      string `json:"target"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Field       string `json:"field,omitempty"`
}

type SchemaRelationship struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Target      string `json:"target"`
	Type        string `json:"type"`
	Label       string `json:"label"`
	SourceField string `json:"sourceField,omitempty"`
	TargetField string `json:"targetField,omitempty"`
}
