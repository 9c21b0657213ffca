package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_nav/internal/campusdata"
	"campus_nav/internal/models"
)

func TestFileRepositoryEmbeddedDefault(t *testing.T) {
	ctx := context.Background()
	repo := NewFileCampusRepository("")

	data, err := repo.LoadCampus(ctx)
	require.NoError(t, err)
	require.Len(t, data.BlockedPaths, 3)

	block := models.BlockedPath{From: "corridor-0-center", To: "corridor-0-right", Reason: "Evento", Temporary: true}
	require.NoError(t, repo.SaveBlock(ctx, block))

	data, err = repo.LoadCampus(ctx)
	require.NoError(t, err)
	assert.Len(t, data.BlockedPaths, 4)
	assert.Equal(t, block, data.BlockedPaths[3])

	// volver a bloquear reemplaza el motivo
	block.Reason = "Acto cívico"
	require.NoError(t, repo.SaveBlock(ctx, block))
	data, _ = repo.LoadCampus(ctx)
	assert.Len(t, data.BlockedPaths, 4)
	assert.Equal(t, "Acto cívico", data.BlockedPaths[3].Reason)

	require.NoError(t, repo.RemoveBlock(ctx, "corridor-0-center", "corridor-0-right"))
	err = repo.RemoveBlock(ctx, "corridor-0-center", "corridor-0-right")
	assert.ErrorIs(t, err, models.ErrBlockNotFound)

	data, _ = repo.LoadCampus(ctx)
	assert.Len(t, data.BlockedPaths, 3)
}

func TestFileRepositoryLoadReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewFileCampusRepository("")

	data, err := repo.LoadCampus(ctx)
	require.NoError(t, err)
	data.BlockedPaths[0].Reason = "mutated"

	again, err := repo.LoadCampus(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.BlockedPaths[0].Reason)
}

func TestFileRepositoryPersistsToFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "campus.yaml")

	data, err := campusdata.Default()
	require.NoError(t, err)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, campusdata.Write(f, path, data))
	require.NoError(t, f.Close())

	repo := NewFileCampusRepository(path)
	require.NoError(t, repo.RemoveBlock(ctx, "corridor-1-center", "bathroom-1"))

	// un repositorio nuevo ve el cambio en disco
	reloaded, err := NewFileCampusRepository(path).LoadCampus(ctx)
	require.NoError(t, err)
	assert.Len(t, reloaded.BlockedPaths, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be cleaned up")
}

func TestFileRepositoryMissingFile(t *testing.T) {
	repo := NewFileCampusRepository(filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := repo.LoadCampus(context.Background())
	assert.Error(t, err)
	assert.Error(t, repo.SaveBlock(context.Background(), models.BlockedPath{From: "a", To: "b"}))
}
