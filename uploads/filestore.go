// Package uploads stores report images on local disk and hands out the
// public paths under which they are served back.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type FileStore struct {
	dir        string
	publicPath string
}

// NewFileStore ensures the upload directory exists and returns a store
// serving files under publicPath.
func NewFileStore(dir, publicPath string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, publicPath: publicPath}, nil
}

func (f *FileStore) Dir() string {
	return f.dir
}

// Save writes src under a random name, keeping the original extension, and
// returns the public path of the stored file.
func (f *FileStore) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	dst, err := os.Create(filepath.Join(f.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	return path.Join(f.publicPath, name), nil
}

// SaveUpload stores a multipart file part.
func (f *FileStore) SaveUpload(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload part: %w", err)
	}
	defer src.Close()
	return f.Save(src, fh.Filename)
}

// Remove deletes the file behind a public path. A missing file is not an
// error; the record it belonged to is already gone or never had one.
func (f *FileStore) Remove(publicPath string) error {
	if publicPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(f.dir, path.Base(publicPath)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
