package outbound

import "context"

// ArtifactStorePort is the stable, long-lived home of stitched audio files:
// one directory per document id holding a single final audio file. Store
// copies the file out of the working directory and returns the retrievable
// URL recorded on the AudioOutput, so later cleanup of the workdir cannot
// affect completed downloads.
type ArtifactStorePort interface {
	Store(ctx context.Context, documentID string, sourcePath string) (string, error)
	// FilePath resolves the stable on-disk location for a document's audio.
	FilePath(documentID string) string
}
