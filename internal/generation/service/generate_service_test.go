package service_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/uxrlab/uxr-backend/internal/apperr"
	"github.com/uxrlab/uxr-backend/internal/generation/service"
	"github.com/uxrlab/uxr-backend/internal/projects/domain"
	"github.com/uxrlab/uxr-backend/internal/projects/repository"
	"github.com/uxrlab/uxr-backend/internal/uploads"
)

// fakeClient stands in for the generation service so pipeline behavior can
// be tested without network access.
type fakeClient struct {
	unconfigured bool
	out          string
	err          error
	prompts      []string
}

func (f *fakeClient) Configured() error {
	if f.unconfigured {
		return apperr.New(apperr.CodeApiConfigurationError, "Claude API key not configured")
	}
	return nil
}

func (f *fakeClient) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

type fixture struct {
	svc    *service.GenerateService
	store  repository.Store
	files  *uploads.Store
	client *fakeClient
}

func newFixture(t *testing.T, client *fakeClient) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Project{}, &domain.Deliverable{}))

	store := repository.NewStore(db)

	files, err := uploads.NewStore(t.TempDir(), 10*1024*1024)
	require.NoError(t, err)

	return &fixture{
		svc:    service.NewGenerateService(store, files, client),
		store:  store,
		files:  files,
		client: client,
	}
}

func (f *fixture) addFile(t *testing.T, id, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.files.Path(id), []byte(content), 0o644))
}

func TestGenerate_Success(t *testing.T) {
	client := &fakeClient{out: "# User Persona\n\ngenerated"}
	f := newFixture(t, client)
	f.addFile(t, "notes.txt", "user likes fast checkout")

	res, err := f.svc.Generate(context.Background(), service.GenerateRequest{
		FileIDs:         []string{"notes.txt"},
		Context:         "summarize pain points",
		DeliverableType: "persona",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TypePersona, res.Project.DeliverableType)
	assert.NotEmpty(t, res.Deliverable.Content)
	assert.Equal(t, res.Project.ID, res.Deliverable.ProjectID)
	assert.Equal(t, []string{"notes.txt"}, []string(res.Deliverable.FileNames))
	require.NotNil(t, res.Deliverable.ContextUsed)
	assert.Equal(t, "summarize pain points", *res.Deliverable.ContextUsed)

	// The composed prompt carries the research text with its marker.
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "--- File: notes.txt ---\nuser likes fast checkout")
	assert.Contains(t, client.prompts[0], "ADDITIONAL CONTEXT:\nsummarize pain points")

	// Default name combines the type and the current date.
	assert.Contains(t, res.Project.Name, "Persona - ")
}

func TestGenerate_ExplicitProjectName(t *testing.T) {
	f := newFixture(t, &fakeClient{out: "content"})
	f.addFile(t, "a.txt", "data")

	res, err := f.svc.Generate(context.Background(), service.GenerateRequest{
		FileIDs:         []string{"a.txt"},
		DeliverableType: "journey",
		ProjectName:     "Q3 Checkout Study",
	})
	require.NoError(t, err)
	assert.Equal(t, "Q3 Checkout Study", res.Project.Name)
	assert.Nil(t, res.Deliverable.ContextUsed, "empty context is stored as null")
}

func TestGenerate_NoFilesProvided(t *testing.T) {
	f := newFixture(t, &fakeClient{out: "content"})

	_, err := f.svc.Generate(context.Background(), service.GenerateRequest{
		DeliverableType: "persona",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNoFilesProvided, apperr.CodeOf(err))
	assertStoreEmpty(t, f.store)
}

func TestGenerate_InvalidDeliverableType(t *testing.T) {
	f := newFixture(t, &fakeClient{out: "content"})
	f.addFile(t, "a.txt", "data")

	_, err := f.svc.Generate(context.Background(), service.GenerateRequest{
		FileIDs:         []string{"a.txt"},
		DeliverableType: "storyboard",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidDeliverableType, apperr.CodeOf(err))
	assertStoreEmpty(t, f.store)
}

func TestGenerate_FileNotFound(t *testing.T) {
	f := newFixture(t, &fakeClient{out: "content"})

	_, err := f.svc.Generate(context.Background(), service.GenerateRequest{
		FileIDs:         []string{"never-uploaded.txt"},
		DeliverableType: "persona",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeFileNotFound, apperr.CodeOf(err))
	assert.Contains(t, apperr.MessageOf(err), "never-uploaded.txt")
	assertStoreEmpty(t, f.store)
}

func TestGenerate_UnconfiguredFailsBeforeFileAccess(t *testing.T) {
	client := &fakeClient{unconfigured: true}
	f := newFixture(t, client)

	// The referenced file does not exist; a configuration error anyway
	// proves the credential check runs before any file is touched.
	_, err := f.svc.Generate(context.Background(), service.GenerateRequest{
		FileIDs:         []string{"missing.txt"},
		DeliverableType: "persona",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeApiConfigurationError, apperr.CodeOf(err))
	assert.Empty(t, client.prompts)
	assertStoreEmpty(t, f.store)
}

func TestGenerate_UpstreamFailureNothingPersisted(t *testing.T) {
	client := &fakeClient{err: apperr.New(apperr.CodeGenerationFailed, "Claude API Error: overloaded")}
	f := newFixture(t, client)
	f.addFile(t, "a.txt", "data")

	_, err := f.svc.Generate(context.Background(), service.GenerateRequest{
		FileIDs:         []string{"a.txt"},
		DeliverableType: "blueprint",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeGenerationFailed, apperr.CodeOf(err))
	assertStoreEmpty(t, f.store)
}

func TestGenerate_ExtractionFailureAbortsWholeRequest(t *testing.T) {
	f := newFixture(t, &fakeClient{out: "content"})
	f.addFile(t, "good.txt", "fine")
	f.addFile(t, "bad.pdf", "not a pdf at all")

	_, err := f.svc.Generate(context.Background(), service.GenerateRequest{
		FileIDs:         []string{"good.txt", "bad.pdf"},
		DeliverableType: "persona",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeExtractionFailed, apperr.CodeOf(err))
	assert.Empty(t, f.client.prompts, "generation must not run after a failed extraction")
	assertStoreEmpty(t, f.store)
}

func assertStoreEmpty(t *testing.T, store repository.Store) {
	t.Helper()
	count, err := store.CountProjects(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
