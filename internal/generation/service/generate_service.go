// Package service sequences a generation run: validate, extract, aggregate,
// compose, generate, persist. It is the only component that drives the
// others; each step runs once and the first failure aborts the request.
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/uxrlab/uxr-backend/internal/apperr"
	"github.com/uxrlab/uxr-backend/internal/generation/extract"
	"github.com/uxrlab/uxr-backend/internal/generation/llm"
	"github.com/uxrlab/uxr-backend/internal/generation/prompt"
	"github.com/uxrlab/uxr-backend/internal/projects/domain"
	"github.com/uxrlab/uxr-backend/internal/projects/repository"
	"github.com/uxrlab/uxr-backend/internal/uploads"
)

type GenerateRequest struct {
	FileIDs         []string
	Context         string
	DeliverableType string
	ProjectName     string
}

type GenerateResult struct {
	Project     *domain.Project     `json:"project"`
	Deliverable *domain.Deliverable `json:"deliverable"`
}

type GenerateService struct {
	store   repository.Store
	uploads *uploads.Store
	client  llm.Client
}

func NewGenerateService(store repository.Store, up *uploads.Store, client llm.Client) *GenerateService {
	return &GenerateService{store: store, uploads: up, client: client}
}

// Generate runs the whole pipeline for one request. Nothing is persisted
// unless every prior step succeeded, and the project/deliverable pair is
// written in a single transaction.
func (s *GenerateService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if len(req.FileIDs) == 0 {
		return nil, apperr.New(apperr.CodeNoFilesProvided, "No files provided")
	}

	t, ok := domain.ParseDeliverableType(req.DeliverableType)
	if !ok {
		return nil, apperr.Newf(apperr.CodeInvalidDeliverableType, "Invalid deliverable type: %s", req.DeliverableType)
	}

	// Fail fast on a missing credential before touching the filesystem.
	if err := s.client.Configured(); err != nil {
		return nil, err
	}

	files := make([]extract.FileText, 0, len(req.FileIDs))
	for _, id := range req.FileIDs {
		path, err := s.uploads.Resolve(id)
		if err != nil {
			return nil, err
		}
		text, err := extract.Extract(path)
		if err != nil {
			return nil, err
		}
		files = append(files, extract.FileText{ID: id, Text: text})
	}

	research := extract.Aggregate(files)

	promptText, err := prompt.Compose(t, research, req.Context)
	if err != nil {
		return nil, err
	}

	content, err := s.client.Generate(ctx, promptText)
	if err != nil {
		return nil, err
	}

	name := req.ProjectName
	if name == "" {
		name = fmt.Sprintf("%s - %s", t.Title(), time.Now().Format("1/2/2006"))
	}

	var contextUsed *string
	if req.Context != "" {
		contextUsed = &req.Context
	}

	project, deliverable, err := s.store.CreateProjectWithDeliverable(ctx, name, t, content, contextUsed, req.FileIDs)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodePersistenceFailed, "Failed to save deliverable", err)
	}

	log.Printf("[generate] project=%s type=%s files=%d", project.ID, t, len(files))

	return &GenerateResult{Project: project, Deliverable: deliverable}, nil
}
