package adapters

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
)

const storedAudioFileName = "final.mp3"

// localArtifactStore keeps one directory per document under the storage
// root. Store copies the stitched file out of the working directory, so the
// work dir can be removed without touching completed downloads.
type localArtifactStore struct {
	logger outbound.LoggerPort
	root   string
}

func NewLocalArtifactStore(logger outbound.LoggerPort, root string) outbound.ArtifactStorePort {
	return &localArtifactStore{
		logger: logger,
		root:   root,
	}
}

func (s *localArtifactStore) Store(ctx context.Context, documentID string, sourcePath string) (string, error) {
	dir := filepath.Join(s.root, documentID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("open stitched file: %w", err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			s.logger.Error(closeErr, "Failed to close stitched file")
		}
	}()

	target := s.FilePath(documentID)
	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("copy stitched file: %w", err)
	}
	if err = dst.Close(); err != nil {
		return "", fmt.Errorf("close stored file: %w", err)
	}

	s.logger.InfoWithFields("Audio file stored", map[string]interface{}{
		"document_id": documentID,
		"path":        target,
	})

	return "/api/audio/" + documentID + "/download", nil
}

func (s *localArtifactStore) FilePath(documentID string) string {
	return filepath.Join(s.root, documentID, storedAudioFileName)
}
