package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/uxrlab/uxr-backend/internal/projects/domain"
	"github.com/uxrlab/uxr-backend/internal/projects/repository"
)

func newTestStore(t *testing.T) repository.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Project{}, &domain.Deliverable{}))
	return repository.NewStore(db)
}

func TestProjectRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateProject(ctx, "Checkout study", domain.TypePersona)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := store.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout study", got.Name)
	assert.Equal(t, domain.TypePersona, got.DeliverableType)
	assert.Equal(t, created.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestGetProject_Unknown(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetProject(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenameProject(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateProject(ctx, "Before", domain.TypeJourney)
	require.NoError(t, err)

	renamed, err := store.RenameProject(ctx, created.ID, "After")
	require.NoError(t, err)
	assert.Equal(t, "After", renamed.Name)
	assert.Equal(t, created.CreatedAt.Unix(), renamed.CreatedAt.Unix())
	assert.GreaterOrEqual(t, renamed.UpdatedAt.UnixNano(), created.UpdatedAt.UnixNano())

	_, err = store.RenameProject(ctx, "no-such-id", "X")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProjects_MostRecentFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.CreateProject(ctx, fmt.Sprintf("p%d", i), domain.TypeBlueprint)
		require.NoError(t, err)
	}

	items, err := store.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i-1].CreatedAt.Before(items[i].CreatedAt))
	}

	count, err := store.CountProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDeliverables(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p, err := store.CreateProject(ctx, "Study", domain.TypePersona)
	require.NoError(t, err)

	ctxUsed := "summarize pain points"
	d, err := store.CreateDeliverable(ctx, p.ID, "# Persona", &ctxUsed, []string{"a.txt", "b.pdf"})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	require.NotNil(t, d.ContextUsed)
	assert.Equal(t, ctxUsed, *d.ContextUsed)
	assert.Equal(t, []string{"a.txt", "b.pdf"}, []string(d.FileNames))

	_, err = store.CreateDeliverable(ctx, p.ID, "# Persona v2", nil, nil)
	require.NoError(t, err)

	items, err := store.ListDeliverables(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i-1].CreatedAt.Before(items[i].CreatedAt))
	}
}

func TestDeleteProject_CascadesToDeliverables(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p, err := store.CreateProject(ctx, "Doomed", domain.TypeJourney)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := store.CreateDeliverable(ctx, p.ID, fmt.Sprintf("content %d", i), nil, nil)
		require.NoError(t, err)
	}

	ok, err := store.DeleteProject(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	items, err := store.ListDeliverables(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	ok, err = store.DeleteProject(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete removes nothing")
}

func TestCreateProjectWithDeliverable_Transactional(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p, d, err := store.CreateProjectWithDeliverable(ctx, "Combined", domain.TypeBlueprint, "content", nil, []string{"f.txt"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, d.ProjectID)

	got, err := store.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Combined", got.Name)

	items, err := store.ListDeliverables(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "content", items[0].Content)
}
