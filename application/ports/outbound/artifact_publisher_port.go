package outbound

import "context"

// ArtifactPublisherPort mirrors a finished audio file to long-term object
// storage and returns its public URL. Publishing is optional; the pipeline
// only ever references the stable local copy.
type ArtifactPublisherPort interface {
	Publish(ctx context.Context, documentID string, filePath string) (string, error)
}
