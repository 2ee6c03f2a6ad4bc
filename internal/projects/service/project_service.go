package service

import (
	"context"

	"github.com/uxrlab/uxr-backend/internal/projects/domain"
	"github.com/uxrlab/uxr-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	store repository.Store
}

// NewProjectService creates a new project service
func NewProjectService(store repository.Store) *ProjectService {
	return &ProjectService{
		store: store,
	}
}

// List returns all projects, most recent first, with the total count.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, int64, error) {
	items, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.store.CountProjects(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

// Get fetches one project by id
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.store.GetProject(ctx, id)
}

// Deliverables returns a project together with its deliverables, most
// recent first.
func (s *ProjectService) Deliverables(ctx context.Context, id string) (*domain.Project, []domain.Deliverable, error) {
	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.store.ListDeliverables(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return p, items, nil
}

// Rename updates a project's name
func (s *ProjectService) Rename(ctx context.Context, id, name string) (*domain.Project, error) {
	return s.store.RenameProject(ctx, id, name)
}

// Delete removes a project and, through the FK cascade, its deliverables
func (s *ProjectService) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.DeleteProject(ctx, id)
}
