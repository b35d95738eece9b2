package adapters

import (
	"context"
	"net/http"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
)

// httpSourceFetcher downloads the raw text of an uploaded-file submission.
type httpSourceFetcher struct {
	ContentFetcher
	logger outbound.LoggerPort
}

func NewHTTPSourceFetcher(contentFetcher ContentFetcher, logger outbound.LoggerPort) outbound.SourceFetcherPort {
	return &httpSourceFetcher{
		ContentFetcher: contentFetcher,
		logger:         logger,
	}
}

func (f *httpSourceFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.logger.Error(err, "Failed to create source fetch request")
		return nil, err
	}
	return f.FetchContent(req)
}
