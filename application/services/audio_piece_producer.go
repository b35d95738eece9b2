package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
)

// DefaultPieceCharacterBudget bounds one synthesis request; the speech
// service rejects inputs past 5000 characters, so stay comfortably under.
const DefaultPieceCharacterBudget = 4500

// ProgressCallback reports (piecesCompletedSoFar, totalPieces) after each
// piece. The audio worker maps it into the 60-90 progress band.
type ProgressCallback func(done int, total int)

// AudioPieceProducer splits a script into synthesis-sized pieces and
// converts them to audio sequentially, in order. Ordering is required both
// for deterministic output and because each request carries the ids of the
// previous ones to preserve voice continuity.
type AudioPieceProducer struct {
	logger         outbound.LoggerPort
	synthesizer    outbound.SpeechSynthesizerPort
	sentenceRegexp *regexp.Regexp
	pieceBudget    int
}

func NewAudioPieceProducer(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort, pieceBudget int) *AudioPieceProducer {
	if pieceBudget <= 0 {
		pieceBudget = DefaultPieceCharacterBudget
	}
	return &AudioPieceProducer{
		logger:         logger,
		synthesizer:    synthesizer,
		sentenceRegexp: regexp.MustCompile(`[^.!?]+[.!?]+`),
		pieceBudget:    pieceBudget,
	}
}

// SplitScript packs whole sentences greedily into pieces no larger than the
// character budget. A script without sentence punctuation becomes a single
// piece.
func (p *AudioPieceProducer) SplitScript(script string) []string {
	sentences := p.sentenceRegexp.FindAllString(script, -1)
	if sentences == nil {
		sentences = []string{script}
	}

	pieces := make([]string, 0)
	var current strings.Builder

	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		if current.Len() > 0 && current.Len()+len(trimmed) > p.pieceBudget {
			pieces = append(pieces, strings.TrimSpace(current.String()))
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(trimmed)
	}

	if current.Len() > 0 {
		pieces = append(pieces, strings.TrimSpace(current.String()))
	}

	return pieces
}

// Produce synthesizes every piece into workDir as an individually indexed
// file and returns the ordered file paths.
func (p *AudioPieceProducer) Produce(ctx context.Context, script string, workDir string, onProgress ProgressCallback) ([]string, error) {
	pieces := p.SplitScript(script)
	total := len(pieces)

	p.logger.InfoWithFields("Generating audio pieces", map[string]interface{}{
		"pieces":   total,
		"work_dir": workDir,
	})

	filePaths := make([]string, 0, total)
	requestIDs := make([]string, 0, total)

	for i, text := range pieces {
		result, err := p.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
			Text:               text,
			PreviousRequestIDs: requestIDs,
		})
		if err != nil {
			return nil, fmt.Errorf("synthesize piece %d/%d: %w", i+1, total, err)
		}

		filePath := filepath.Join(workDir, fmt.Sprintf("piece_%d.mp3", i))
		if err := os.WriteFile(filePath, result.Audio, 0o644); err != nil {
			return nil, fmt.Errorf("write piece %d/%d: %w", i+1, total, err)
		}

		filePaths = append(filePaths, filePath)
		requestIDs = append(requestIDs, result.RequestID)

		if onProgress != nil {
			onProgress(i+1, total)
		}
	}

	return filePaths, nil
}
