package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/satwik073/Priscus-server/internal/projects/domain"
	"github.com/satwik073/Priscus-server/internal/storage"
	"github.com/satwik073/Priscus-server/internal/storage/sqlite"
)

// projectRecord is the row layout of the projects table. Artifacts are JSON text.
type projectRecord struct {
	ID          string    `gorm:"primaryKey;type:text"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Analysis    string    `gorm:"type:text"`
	Kanban      string    `gorm:"type:text"`
	Workflow    string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (projectRecord) TableName() string { return "projects" }

func (r projectRecord) toDomain() (*domain.Project, error) {
	p := &domain.Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
	if err := fillArtifacts(p, r.Analysis, r.Kanban, r.Workflow); err != nil {
		return nil, err
	}
	return p, nil
}

func migrateProjects(db *gorm.DB) error {
	return db.AutoMigrate(&projectRecord{})
}

// SQLiteStore is the embedded single-file store used for local runs and tests.
type SQLiteStore struct {
	conn *storage.Lazy[*gorm.DB]
	now  Clock
}

func NewSQLiteStore(path string, lazy storage.Options) *SQLiteStore {
	return newSQLiteStore(storage.NewLazy(sqlite.Dial(path, migrateProjects), sqlite.Close, lazy))
}

func newSQLiteStore(conn *storage.Lazy[*gorm.DB]) *SQLiteStore {
	return &SQLiteStore{conn: conn, now: utcNow}
}

func (s *SQLiteStore) Connect(ctx context.Context) error {
	_, err := s.conn.Connect(ctx)
	return err
}

func (s *SQLiteStore) Create(ctx context.Context, p *domain.Project) (string, error) {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return "", err
	}

	prepareNew(p, s.now())
	analysis, kanban, workflow, err := artifactColumns(p)
	if err != nil {
		return "", err
	}

	rec := projectRecord{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Analysis:    analysis,
		Kanban:      kanban,
		Workflow:    workflow,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if err := db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", fmt.Errorf("insert project: %w", err)
	}
	return p.ID, nil
}

func (s *SQLiteStore) Update(ctx context.Context, id string, u domain.ProjectUpdate) error {
	id, err := domain.NormalizeID(id)
	if err != nil {
		return err
	}
	db, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Analysis != nil {
		if fields["analysis"], err = encodeArtifact(u.Analysis); err != nil {
			return err
		}
	}
	if u.Kanban != nil {
		if fields["kanban"], err = encodeArtifact(u.Kanban); err != nil {
			return err
		}
	}
	if u.Workflow != nil {
		if fields["workflow"], err = encodeArtifact(u.Workflow); err != nil {
			return err
		}
	}

	now := s.now()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec projectRecord
		if err := tx.Select("id", "created_at").First(&rec, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("update project: %w", err)
		}

		fields["updated_at"] = domain.UpdatedAt(rec.CreatedAt, now)
		if err := tx.Model(&projectRecord{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	id, err := domain.NormalizeID(id)
	if err != nil {
		return nil, err
	}
	db, err := s.conn.Get(ctx)
	if err != nil {
		return nil, err
	}

	var rec projectRecord
	if err := db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return rec.toDomain()
}

func (s *SQLiteStore) List(ctx context.Context) ([]domain.Project, error) {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return nil, err
	}

	var recs []projectRecord
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]domain.Project, 0, len(recs))
	for _, rec := range recs {
		p, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	id, err := domain.NormalizeID(id)
	if err != nil {
		return err
	}
	db, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Delete(&projectRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	db, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
