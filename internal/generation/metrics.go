package generation

import "sync/atomic"

// Kind names an artifact the generator produces.
type Kind string

const (
	KindAnalysis Kind = "analysis"
	KindKanban   Kind = "kanban"
	KindWorkflow Kind = "workflow"
)

type kindCounters struct {
	generated int64
	fallback  int64
}

// Metrics counts generated and fallback outcomes per artifact kind.
type Metrics struct {
	analysis kindCounters
	kanban   kindCounters
	workflow kindCounters
}

// KindStats is a point-in-time view of one kind's counters.
type KindStats struct {
	Generated int64 `json:"generated"`
	Fallback  int64 `json:"fallback"`
}

// Snapshot is the health view of Metrics.
type Snapshot struct {
	Analysis KindStats `json:"analysis"`
	Kanban   KindStats `json:"kanban"`
	Workflow KindStats `json:"workflow"`
}

func (m *Metrics) counters(k Kind) *kindCounters {
	switch k {
	case KindKanban:
		return &m.kanban
	case KindWorkflow:
		return &m.workflow
	default:
		return &m.analysis
	}
}

func (m *Metrics) record(k Kind, src Source) {
	c := m.counters(k)
	if src == SourceGenerated {
		atomic.AddInt64(&c.generated, 1)
		return
	}
	atomic.AddInt64(&c.fallback, 1)
}

func load(c *kindCounters) KindStats {
	return KindStats{
		Generated: atomic.LoadInt64(&c.generated),
		Fallback:  atomic.LoadInt64(&c.fallback),
	}
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Analysis: load(&m.analysis),
		Kanban:   load(&m.kanban),
		Workflow: load(&m.workflow),
	}
}

// FallbackRate returns the share of fallback outcomes across all kinds as a percentage.
func (s Snapshot) FallbackRate() float64 {
	total := s.Analysis.Generated + s.Analysis.Fallback +
		s.Kanban.Generated + s.Kanban.Fallback +
		s.Workflow.Generated + s.Workflow.Fallback
	if total == 0 {
		return 0
	}
	fallback := s.Analysis.Fallback + s.Kanban.Fallback + s.Workflow.Fallback
	return float64(fallback) / float64(total) * 100
}
