package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// postMediaDir namespaces uploaded post images under the media root.
const postMediaDir = "posts"

var imageExtensions = map[string]bool{
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

// MediaStore writes uploaded images under a local media root and hands
// back paths relative to it, which is what the post record keeps.
type MediaStore struct {
	root string
}

func NewMediaStore(root string) (*MediaStore, error) {
	if err := os.MkdirAll(filepath.Join(root, postMediaDir), 0o755); err != nil {
		return nil, err
	}
	return &MediaStore{root: root}, nil
}

func (ms *MediaStore) Root() string {
	return ms.root
}

// SavePostImage stores the upload and returns its media-relative path.
func (ms *MediaStore) SavePostImage(header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	relPath := filepath.Join(postMediaDir, uuid.NewString()+ext)
	dst, err := os.Create(filepath.Join(ms.root, relPath))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filepath.ToSlash(relPath), nil
}
