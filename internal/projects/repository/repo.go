package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/uxrlab/uxr-backend/internal/projects/domain"
)

// Store is the persistence boundary for projects and deliverables. It is an
// interface so the orchestrator and handlers can be tested against a
// substitute store.
type Store interface {
	CreateProject(ctx context.Context, name string, t domain.DeliverableType) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	RenameProject(ctx context.Context, id, name string) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
	CountProjects(ctx context.Context) (int64, error)

	CreateDeliverable(ctx context.Context, projectID, content string, contextUsed *string, fileNames []string) (*domain.Deliverable, error)
	ListDeliverables(ctx context.Context, projectID string) ([]domain.Deliverable, error)

	// CreateProjectWithDeliverable performs both inserts in one transaction
	// so a failed deliverable write never leaves an orphaned project behind.
	CreateProjectWithDeliverable(ctx context.Context, name string, t domain.DeliverableType, content string, contextUsed *string, fileNames []string) (*domain.Project, *domain.Deliverable, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a gorm-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CreateProject(ctx context.Context, name string, t domain.DeliverableType) (*domain.Project, error) {
	return createProject(s.db.WithContext(ctx), name, t)
}

func createProject(db *gorm.DB, name string, t domain.DeliverableType) (*domain.Project, error) {
	now := time.Now().UTC()
	p := domain.Project{
		ID:              uuid.NewString(),
		Name:            name,
		DeliverableType: t,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *gormStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *gormStore) RenameProject(ctx context.Context, id, name string) (*domain.Project, error) {
	res := s.db.WithContext(ctx).Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return s.GetProject(ctx, id)
}

func (s *gormStore) DeleteProject(ctx context.Context, id string) (bool, error) {
	// Deliverables go with the project via the FK cascade, not as a
	// separate application-level delete.
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Project{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) CountProjects(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&domain.Project{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *gormStore) CreateDeliverable(ctx context.Context, projectID, content string, contextUsed *string, fileNames []string) (*domain.Deliverable, error) {
	return createDeliverable(s.db.WithContext(ctx), projectID, content, contextUsed, fileNames)
}

func createDeliverable(db *gorm.DB, projectID, content string, contextUsed *string, fileNames []string) (*domain.Deliverable, error) {
	d := domain.Deliverable{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Content:     content,
		ContextUsed: contextUsed,
		CreatedAt:   time.Now().UTC(),
	}
	if fileNames != nil {
		d.FileNames = datatypes.NewJSONSlice(fileNames)
	}
	if err := db.Create(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *gormStore) ListDeliverables(ctx context.Context, projectID string) ([]domain.Deliverable, error) {
	var out []domain.Deliverable
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore) CreateProjectWithDeliverable(ctx context.Context, name string, t domain.DeliverableType, content string, contextUsed *string, fileNames []string) (*domain.Project, *domain.Deliverable, error) {
	var (
		p *domain.Project
		d *domain.Deliverable
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = createProject(tx, name, t); err != nil {
			return err
		}
		if d, err = createDeliverable(tx, p.ID, content, contextUsed, fileNames); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return p, d, nil
}
