package adapters

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
)

const defaultHTTPTimeout = 5 * time.Minute

// ContentFetcher performs an HTTP request and returns the response body.
// External TTS/LLM calls can take minutes, hence the generous timeout.
type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
	// FetchContentWithHeader also returns the response headers, for
	// collaborators that carry correlation ids there.
	FetchContentWithHeader(req *http.Request) ([]byte, http.Header, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	payload, _, err := c.FetchContentWithHeader(req)
	return payload, err
}

func (c *contentFetcher) FetchContentWithHeader(req *http.Request) ([]byte, http.Header, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, nil, fmt.Errorf("%w: %v", outbound.ErrTransient, err)
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			c.logger.Error(closeErr, "Failed to close the response body")
		}
	}()

	if res.StatusCode != http.StatusOK {
		bodyPayload, _ := io.ReadAll(res.Body)
		c.logger.ErrorWithFields(nil, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(bodyPayload),
		})
		if res.StatusCode >= http.StatusInternalServerError {
			return nil, nil, fmt.Errorf("%w: status %d", outbound.ErrTransient, res.StatusCode)
		}
		return nil, nil, fmt.Errorf("HTTP request returned non-OK status code: %d", res.StatusCode)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, nil, fmt.Errorf("%w: %v", outbound.ErrTransient, err)
	}

	return payload, res.Header, nil
}
