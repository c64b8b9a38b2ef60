package filestore

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore persists uploaded and recorded binaries in a shared directory.
// Submission documents reference the stored files by filename only.
type FileStore struct {
	dir string
}

func New(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("uploads directory not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not prepare uploads directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) Dir() string {
	return fs.dir
}

func (fs *FileStore) Path(filename string) string {
	return filepath.Join(fs.dir, filepath.Base(filename))
}

// GeneratedFilename produces a unique stored name: {timestamp}_{shortID}{ext}
func GeneratedFilename(ext string) string {
	shortID := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), shortID, ext)
}

// SaveMultipartFile moves one parsed multipart file into the uploads
// directory under a generated name and returns that name.
func (fs *FileStore) SaveMultipartFile(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	storedName := GeneratedFilename(filepath.Ext(fileHeader.Filename))
	dst, err := os.Create(fs.Path(storedName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return storedName, nil
}

// SaveAudioRecording decodes a base64 audio payload and writes it to the
// uploads directory. Returns the stored filename and the decoded size.
func (fs *FileStore) SaveAudioRecording(blobData string, format string) (string, int64, error) {
	audioBytes, err := base64.StdEncoding.DecodeString(blobData)
	if err != nil {
		return "", 0, fmt.Errorf("could not decode audio payload: %w", err)
	}

	storedName := GeneratedFilename("." + format)
	if err := os.WriteFile(fs.Path(storedName), audioBytes, 0o644); err != nil {
		return "", 0, err
	}
	return storedName, int64(len(audioBytes)), nil
}
