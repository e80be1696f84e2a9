package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmind/sigmem-go/pkg/sigel"
	"github.com/sigmind/sigmem-go/pkg/storage"
	postgresStore "github.com/sigmind/sigmem-go/pkg/storage/postgres"
)

func setupPostgresTest(t *testing.T) *postgresStore.Store {
	t.Helper()
	_ = godotenv.Load("../../../.env")

	dsn := os.Getenv("SIGMEM_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("Skipping PostgreSQL test: SIGMEM_TEST_POSTGRES_DSN not set")
	}

	store, err := postgresStore.NewStore(&postgresStore.Config{
		DSN:       dsn,
		TableName: "sigels_test",
	}, zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		names, _ := store.List(ctx)
		for _, name := range names {
			_ = store.Delete(ctx, name)
		}
		_ = store.Close()
	})
	return store
}

func testSigel(name string) *sigel.Sigel {
	sg := sigel.New(42, name)
	sg.Vocabulary.Learn("cat", "the sat")
	sg.Patterns.Add("the cat", 0.5)
	sg.AddMemory(7, "the cat sat on the mat", "test", 0.5)
	return sg
}

func TestPostgresSaveLoad(t *testing.T) {
	store := setupPostgresTest(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSigel("athena")))

	restored, err := store.Load(ctx, "athena")
	require.NoError(t, err)
	assert.Equal(t, "athena", restored.Name)
	assert.Equal(t, 1, restored.Vocabulary.Len())
	require.Len(t, restored.Episodic, 1)
}

func TestPostgresSaveUpserts(t *testing.T) {
	store := setupPostgresTest(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSigel("athena")))

	updated := testSigel("athena")
	updated.AddMemory(8, "a second memory arrived here", "test", 0.0)
	require.NoError(t, store.Save(ctx, updated))

	restored, err := store.Load(ctx, "athena")
	require.NoError(t, err)
	assert.Len(t, restored.Episodic, 2)
}

func TestPostgresLoadMissing(t *testing.T) {
	store := setupPostgresTest(t)

	_, err := store.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPostgresListAndDelete(t *testing.T) {
	store := setupPostgresTest(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSigel("mnemosyne")))
	require.NoError(t, store.Save(ctx, testSigel("athena")))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"athena", "mnemosyne"}, names)

	require.NoError(t, store.Delete(ctx, "athena"))

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mnemosyne"}, names)
}
