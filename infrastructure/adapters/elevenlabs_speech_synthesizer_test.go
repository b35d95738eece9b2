package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/config"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_RequestShapeAndRequestID(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotAPIKey string
	var gotBody elevenLabsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("xi-api-key")
		payload, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(payload, &gotBody))

		w.Header().Set("Request-Id", "req-42")
		_, _ = w.Write([]byte("mpeg-bytes"))
	}))
	defer server.Close()

	synthesizer := NewElevenLabsSpeechSynthesizer(NewContentFetcher(NewZerologWrapper()), &config.TTSConfig{
		ApiUrl:          server.URL,
		ApiKey:          "secret-key",
		ModelId:         "eleven_turbo_v2",
		VoiceId:         "voice-1",
		Stability:       0.5,
		SimilarityBoost: 0.75,
	}, NewZerologWrapper())

	result, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:               "Hello world.",
		PreviousRequestIDs: []string{"req-40", "req-41"},
	})
	require.NoError(t, err)

	require.Equal(t, "/voice-1", gotPath)
	require.Equal(t, "secret-key", gotAPIKey)
	require.Equal(t, "Hello world.", gotBody.Text)
	require.Equal(t, "eleven_turbo_v2", gotBody.ModelId)
	require.Equal(t, []string{"req-40", "req-41"}, gotBody.PreviousRequestIds)
	require.Equal(t, 0.5, gotBody.VoiceSettings.Stability)

	require.Equal(t, []byte("mpeg-bytes"), result.Audio)
	require.Equal(t, "req-42", result.RequestID)
}
