package repository

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satwik073/Priscus-server/internal/projects/domain"
)

// stepClock hands out strictly increasing timestamps one second apart.
type stepClock struct {
	mu   sync.Mutex
	next time.Time
}

func newStepClock() *stepClock {
	return &stepClock{next: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.next
	c.next = c.next.Add(time.Second)
	return t
}

func (c *stepClock) Rewind(d time.Duration) {
	c.mu.Lock()
	c.next = c.next.Add(-d)
	c.mu.Unlock()
}

func sampleAnalysis() *domain.ProjectAnalysis {
	return &domain.ProjectAnalysis{
		Score: 82,
		Pillars: []domain.Pillar{
			{Name: "Technical Feasibility", Score: 85, Feedback: "Standard web stack"},
		},
		Advantages:    domain.Items("Large audience"),
		Disadvantages: []domain.Item{{Title: "Crowded market", Description: "Many recipe apps exist", Impact: "medium"}},
		Features:      domain.Items("Recipe upload", "Search"),
		Recommendations: []domain.Item{
			{Title: "Launch an MVP", Priority: "high", ImplementationSteps: []string{"scope", "build"}},
		},
	}
}

func sampleKanban() *domain.KanbanData {
	return &domain.KanbanData{
		Pipelines: []domain.Pipeline{{ID: "todo", Name: "To Do", Color: "#3b82f6"}},
		Tasks: []domain.Task{{
			ID: "task-1", Title: "Auth", Description: "Login", Pipeline: "todo",
			Priority: domain.PriorityHigh, EstimatedHours: 8, UserStory: "As a cook I want to sign in",
		}},
	}
}

func strPtr(s string) *string { return &s }

// assertSameDocument compares artifacts by their JSON, since decoded artifacts
// carry the document they were read from.
func assertSameDocument(t *testing.T, want, got any) {
	t.Helper()
	w, err := json.Marshal(want)
	require.NoError(t, err)
	g, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(w), string(g))
}

// testStoreContract runs the behaviour every Store driver must share.
func testStoreContract(t *testing.T, newStore func(t *testing.T, clock Clock) Store) {
	ctx := context.Background()

	t.Run("create then get round-trips", func(t *testing.T) {
		clock := newStepClock()
		s := newStore(t, clock.Now)

		p := &domain.Project{Title: "Recipe Sharing App", Description: "A platform for home cooks", Analysis: sampleAnalysis()}
		id, err := s.Create(ctx, p)
		require.NoError(t, err)
		require.NotEmpty(t, id)
		assert.Equal(t, id, p.ID)

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Recipe Sharing App", got.Title)
		assert.Equal(t, "A platform for home cooks", got.Description)
		assertSameDocument(t, sampleAnalysis(), got.Analysis)
		assert.Nil(t, got.Kanban)
		assert.Nil(t, got.Workflow)
		assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
		assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
	})

	t.Run("list is newest first", func(t *testing.T) {
		clock := newStepClock()
		s := newStore(t, clock.Now)

		var ids []string
		for _, title := range []string{"first", "second", "third"} {
			id, err := s.Create(ctx, &domain.Project{Title: title, Description: title + " pitch"})
			require.NoError(t, err)
			ids = append(ids, id)
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, ids[2], list[0].ID)
		assert.Equal(t, ids[1], list[1].ID)
		assert.Equal(t, ids[0], list[2].ID)
	})

	t.Run("list on empty store", func(t *testing.T) {
		s := newStore(t, newStepClock().Now)
		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("generated documents are stored verbatim", func(t *testing.T) {
		s := newStore(t, newStepClock().Now)

		const doc = `{"score":"85","pillars":[{"name":"Market Viability","score":72,"marketSize":"$2B","competitors":["A"]}]}`
		var a domain.ProjectAnalysis
		require.NoError(t, json.Unmarshal([]byte(doc), &a))

		id, err := s.Create(ctx, &domain.Project{Title: "t", Description: "d", Analysis: &a})
		require.NoError(t, err)
		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.JSONEq(t, doc, string(got.Analysis.Raw()))
		assert.Equal(t, 85.0, got.Analysis.Score)
	})

	t.Run("update merges fields", func(t *testing.T) {
		clock := newStepClock()
		s := newStore(t, clock.Now)

		id, err := s.Create(ctx, &domain.Project{Title: "Recipe Sharing App", Description: "pitch", Analysis: sampleAnalysis()})
		require.NoError(t, err)
		before, err := s.Get(ctx, id)
		require.NoError(t, err)

		require.NoError(t, s.Update(ctx, id, domain.ProjectUpdate{Kanban: sampleKanban()}))

		after, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Recipe Sharing App", after.Title)
		assertSameDocument(t, sampleAnalysis(), after.Analysis)
		assertSameDocument(t, sampleKanban(), after.Kanban)
		assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

		require.NoError(t, s.Update(ctx, id, domain.ProjectUpdate{Title: strPtr("Recipe Hub")}))
		renamed, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Recipe Hub", renamed.Title)
		assertSameDocument(t, sampleKanban(), renamed.Kanban)
	})

	t.Run("updatedAt never precedes createdAt", func(t *testing.T) {
		clock := newStepClock()
		s := newStore(t, clock.Now)

		id, err := s.Create(ctx, &domain.Project{Title: "t", Description: "d"})
		require.NoError(t, err)

		clock.Rewind(time.Hour)
		require.NoError(t, s.Update(ctx, id, domain.ProjectUpdate{Description: strPtr("d2")}))

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "d2", got.Description)
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
	})

	t.Run("missing project", func(t *testing.T) {
		s := newStore(t, newStepClock().Now)
		missing := domain.NewID()

		_, err := s.Get(ctx, missing)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		assert.NoError(t, s.Update(ctx, missing, domain.ProjectUpdate{Title: strPtr("x")}))
		assert.NoError(t, s.Delete(ctx, missing))

		_, err = s.Get(ctx, missing)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete removes project", func(t *testing.T) {
		s := newStore(t, newStepClock().Now)
		id, err := s.Create(ctx, &domain.Project{Title: "t", Description: "d"})
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, id))
		_, err = s.Get(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("invalid ids", func(t *testing.T) {
		s := newStore(t, newStepClock().Now)
		for _, bad := range []string{"abc", "507f1f77bcf86cd799439011"} {
			_, err := s.Get(ctx, bad)
			assert.ErrorIs(t, err, domain.ErrInvalidID)
			assert.ErrorIs(t, s.Update(ctx, bad, domain.ProjectUpdate{}), domain.ErrInvalidID)
			assert.ErrorIs(t, s.Delete(ctx, bad), domain.ErrInvalidID)
		}
	})
}
