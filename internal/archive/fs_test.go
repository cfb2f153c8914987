package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreWritesAndLinks(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir, "")
	require.NoError(t, err)

	h, err := store.Store(context.Background(), "Autorizacion_Acme_SAS_900111222.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.Join(dir, "Autorizacion_Acme_SAS_900111222.pdf"), h.Link)

	data, err := os.ReadFile(filepath.Join(dir, "Autorizacion_Acme_SAS_900111222.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestFSStorePublicBaseURL(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), "https://docs.example.co/archive/")
	require.NoError(t, err)

	h, err := store.Store(context.Background(), "doc one.pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.co/archive/doc_one.pdf", h.Link)
}

func TestFSStoreSanitizesTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir, "")
	require.NoError(t, err)

	h, err := store.Store(context.Background(), "../escape.pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "escape.pdf", h.Name)

	_, err = os.Stat(filepath.Join(dir, "escape.pdf"))
	assert.NoError(t, err)
}
