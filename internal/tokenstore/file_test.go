package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_LoadMissing(t *testing.T) {
	sut := NewFile(filepath.Join(t.TempDir(), "token"))

	_, err := sut.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFile_SaveLoadClear(t *testing.T) {
	sut := NewFile(filepath.Join(t.TempDir(), "shanki", "token"))
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, "tok-abc"))

	token, err := sut.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	require.NoError(t, sut.Clear(ctx))
	_, err = sut.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFile_ClearIsIdempotent(t *testing.T) {
	sut := NewFile(filepath.Join(t.TempDir(), "token"))
	ctx := context.Background()

	require.NoError(t, sut.Clear(ctx))
	require.NoError(t, sut.Clear(ctx))
}

func TestFile_EmptyFileCountsAsMissing(t *testing.T) {
	sut := NewFile(filepath.Join(t.TempDir(), "token"))
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, "  \n"))
	_, err := sut.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
