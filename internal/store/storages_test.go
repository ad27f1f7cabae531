package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/migrations"
	"github.com/MKhiriev/go-stego-channel/models"
)

func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := testContext()
	dsn := filepath.Join(t.TempDir(), "nested", "history.db")

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	repo := storages.OperationRepository
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	hide := sampleOperation()
	hide.ID = "a"
	hide.CreatedAt = base

	reveal := sampleOperation()
	reveal.ID = "b"
	reveal.Type = models.OperationReveal
	reveal.CarrierKind = "image"
	reveal.CreatedAt = base.Add(time.Second)

	failed := sampleOperation()
	failed.ID = "c"
	failed.Type = models.OperationReveal
	failed.Success = false
	failed.MessageLength = 0
	failed.Fingerprint = ""
	failed.Error = "authentication failed"
	failed.CreatedAt = base.Add(2 * time.Second)

	for _, op := range []models.Operation{hide, reveal, failed} {
		require.NoError(t, repo.Save(ctx, op))
	}

	all, err := repo.List(ctx, models.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID}, "newest first")
	assert.True(t, all[2].CreatedAt.Equal(base))

	page, err := repo.List(ctx, models.HistoryFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].ID)

	no := false
	unsuccessful, err := repo.List(ctx, models.HistoryFilter{Success: &no})
	require.NoError(t, err)
	require.Len(t, unsuccessful, 1)
	assert.Equal(t, "authentication failed", unsuccessful[0].Error)

	got, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, models.OperationReveal, got.Type)
	assert.Equal(t, "image", got.CarrierKind)
	assert.True(t, got.Success)

	_, err = repo.Get(ctx, "zzz")
	assert.ErrorIs(t, err, ErrOperationNotFound)

	require.NoError(t, repo.Delete(ctx, "a"))
	assert.ErrorIs(t, repo.Delete(ctx, "a"), ErrOperationNotFound)

	n, err := repo.Clear(ctx, models.HistoryFilter{Type: models.OperationReveal})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rest, err := repo.List(ctx, models.HistoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestNewConnect_DSNDispatch(t *testing.T) {
	ctx := testContext()

	_, err := NewConnect(ctx, config.DB{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)

	db, err := NewConnect(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	assert.Equal(t, migrations.DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.True(t, isPostgresDSN("host=localhost user=u dbname=db"))
	assert.False(t, isPostgresDSN("/var/lib/stego/history.db"))
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
	assert.NoError(t, (&Storages{}).Close())
}
