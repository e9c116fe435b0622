package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, contents []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(contents)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestMediaStoreCreatesPostDir(t *testing.T) {
	root := t.TempDir()
	_, err := NewMediaStore(root)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "posts"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSavePostImage(t *testing.T) {
	root := t.TempDir()
	store, err := NewMediaStore(root)
	require.NoError(t, err)

	contents := []byte("not really a gif")
	relPath, err := store.SavePostImage(uploadHeader(t, "small.gif", contents))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, "posts/"), "got %q", relPath)
	assert.True(t, strings.HasSuffix(relPath, ".gif"), "got %q", relPath)

	written, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, contents, written)
}

func TestSavePostImageUppercaseExtension(t *testing.T) {
	store, err := NewMediaStore(t.TempDir())
	require.NoError(t, err)

	relPath, err := store.SavePostImage(uploadHeader(t, "photo.JPG", []byte("jpg")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(relPath, ".jpg"), "got %q", relPath)
}

func TestSavePostImageRejectsNonImage(t *testing.T) {
	store, err := NewMediaStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.SavePostImage(uploadHeader(t, "notes.txt", []byte("text")))
	assert.Error(t, err)
}

func TestSavePostImageNamesAreUnique(t *testing.T) {
	store, err := NewMediaStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.SavePostImage(uploadHeader(t, "same.png", []byte("a")))
	require.NoError(t, err)
	second, err := store.SavePostImage(uploadHeader(t, "same.png", []byte("b")))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
