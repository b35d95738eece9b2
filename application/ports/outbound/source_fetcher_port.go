package outbound

import "context"

// SourceFetcherPort retrieves the raw text of an uploaded-file submission
// from its source location.
type SourceFetcherPort interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
