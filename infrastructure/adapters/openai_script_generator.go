package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/config"
	"github.com/donovanhide/eventsource"
)

const DoneSignal = "[DONE]"
const maxStreamRetries = 3

type chatRequest struct {
	Stream   bool          `json:"stream"`
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatChunkBody struct {
	Choices []chatResponseChoice `json:"choices"`
}

type chatResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

// openaiScriptGenerator streams the chat completion and accumulates the
// token deltas into one complete script. The pipeline only ever consumes a
// whole script, so nothing downstream sees a partial stream.
type openaiScriptGenerator struct {
	logger    outbound.LoggerPort
	llmConfig *config.LLMConfig
}

func NewOpenAIScriptGenerator(llmConfig *config.LLMConfig, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &openaiScriptGenerator{
		logger:    logger,
		llmConfig: llmConfig,
	}
}

func (s *openaiScriptGenerator) Generate(ctx context.Context, req outbound.GenerateScriptRequest) (string, error) {
	httpReq, err := s.createRequest(ctx, req)
	if err != nil {
		s.logger.Error(err, "Failed to create HTTP request for script stream")
		return "", err
	}

	stream, err := eventsource.SubscribeWithRequest("", httpReq)
	if err != nil {
		s.logger.Error(err, "Failed to subscribe to script stream")
		return "", fmt.Errorf("%w: %v", outbound.ErrTransient, err)
	}
	defer stream.Close()

	var script strings.Builder
	retryCount := 0

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev := <-stream.Events:
			if ev.Data() == DoneSignal {
				return script.String(), nil
			}
			payload, err := s.extractPayload(ev)
			if err != nil {
				return "", err
			}
			script.WriteString(payload)
			retryCount = 0
		case err := <-stream.Errors:
			if err == io.EOF {
				s.logger.Info("Script stream closed")
				return script.String(), nil
			}
			if retryCount < maxStreamRetries {
				s.logger.ErrorWithFields(err, "Error occurred during streaming, retrying", map[string]interface{}{
					"retry_count": retryCount,
				})
				retryCount++
				continue
			}
			s.logger.Error(err, "Error occurred during streaming, max retries reached")
			return "", fmt.Errorf("%w: %v", outbound.ErrTransient, err)
		}
	}
}

func (s *openaiScriptGenerator) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody chatChunkBody
	if err := json.Unmarshal([]byte(event.Data()), &chunkBody); err != nil {
		s.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}
	return chunkBody.Choices[0].Delta.Content, nil
}

func (s *openaiScriptGenerator) createRequest(ctx context.Context, req outbound.GenerateScriptRequest) (*http.Request, error) {
	promptReq := chatRequest{
		Stream: true,
		Model:  s.llmConfig.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.llmConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		s.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.llmConfig.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
