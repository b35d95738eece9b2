package services

import (
	"strings"
	"testing"

	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/stretchr/testify/require"
)

func TestSegment_CapsHeadings(t *testing.T) {
	t.Parallel()

	segmenter := NewTextSegmenter(noopLogger{})

	chunks := segmenter.Segment("doc-1", "HEADING ONE\ncontent a.\n\nHEADING TWO\ncontent b.")

	require.Len(t, chunks, 2)
	require.Equal(t, "HEADING ONE", chunks[0].Heading)
	require.Equal(t, "content a.", chunks[0].Content)
	require.Equal(t, "HEADING TWO", chunks[1].Heading)
	require.Equal(t, "content b.", chunks[1].Content)
	require.Equal(t, 0, chunks[0].ChunkOrder)
	require.Equal(t, 1, chunks[1].ChunkOrder)
	for _, chunk := range chunks {
		require.Equal(t, "doc-1", chunk.DocumentID)
	}
}

func TestSegment_MarkdownHeadings(t *testing.T) {
	t.Parallel()

	segmenter := NewTextSegmenter(noopLogger{})

	text := "# Planned Release Q3\nNew dashboard is on the roadmap.\n\n## Bug Fixes\nWe fixed the login loop."
	chunks := segmenter.Segment("doc-1", text)

	require.Len(t, chunks, 2)
	require.Equal(t, "Planned Release Q3", chunks[0].Heading)
	require.Equal(t, domain.PlannedReleasesSection, chunks[0].SectionType)
	require.Equal(t, "Bug Fixes", chunks[1].Heading)
	require.Equal(t, domain.BugsFixesSection, chunks[1].SectionType)
}

func TestSegment_ContentBeforeFirstHeading(t *testing.T) {
	t.Parallel()

	segmenter := NewTextSegmenter(noopLogger{})

	chunks := segmenter.Segment("doc-1", "Intro paragraph.\n\nRELEASE NOTES\nDetails here.")

	require.Len(t, chunks, 2)
	require.Equal(t, "Introduction", chunks[0].Heading)
	require.Equal(t, "Intro paragraph.", chunks[0].Content)
	require.Equal(t, "RELEASE NOTES", chunks[1].Heading)
}

func TestSegment_ShortCapsLineIsNotAHeading(t *testing.T) {
	t.Parallel()

	segmenter := NewTextSegmenter(noopLogger{})

	chunks := segmenter.Segment("doc-1", "FIX\nThis line stays in the introduction.")

	require.Len(t, chunks, 1)
	require.Equal(t, "Introduction", chunks[0].Heading)
	require.Contains(t, chunks[0].Content, "FIX")
}

func TestSegment_SmallHeadinglessTextIsOneChunk(t *testing.T) {
	t.Parallel()

	segmenter := NewTextSegmenter(noopLogger{})

	chunks := segmenter.Segment("doc-1", "just a short note without any headings.")

	require.Len(t, chunks, 1)
	require.Equal(t, "Introduction", chunks[0].Heading)
}

func TestSegment_ParagraphFallback(t *testing.T) {
	t.Parallel()

	segmenter := NewTextSegmenter(noopLogger{})

	paragraph := strings.Repeat("lorem ipsum dolor sit amet. ", 30)
	text := strings.TrimSpace(strings.Repeat(paragraph+"\n\n", 6))

	chunks := segmenter.Segment("doc-1", text)

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		require.Equal(t, i, chunk.ChunkOrder)
		require.True(t, strings.HasPrefix(chunk.Heading, "Section "))
		require.LessOrEqual(t, len(chunk.Content), defaultParagraphChunkSize+len(paragraph))
	}

	// No paragraph text is lost across the chunk boundaries.
	var combined strings.Builder
	for _, chunk := range chunks {
		combined.WriteString(chunk.Content)
		combined.WriteString("\n\n")
	}
	require.Equal(t, strings.Count(text, "lorem"), strings.Count(combined.String(), "lorem"))
}

func TestClassifySection_PriorityOrder(t *testing.T) {
	t.Parallel()

	// Planned-release keywords outrank bug-fix keywords when both appear.
	require.Equal(t, domain.PlannedReleasesSection, classifySection("Roadmap", "We fixed a bug and planned release dates."))
	require.Equal(t, domain.TechReleasesSection, classifySection("Updates", "A new feature was released this sprint."))
	require.Equal(t, domain.BugsFixesSection, classifySection("Stability", "The crash on startup was resolved."))
	require.Equal(t, domain.OtherSection, classifySection("Notes", "General housekeeping announcements."))
}

func TestClassifySection_IsDeterministic(t *testing.T) {
	t.Parallel()

	first := classifySection("Heading", "some patch notes")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, classifySection("Heading", "some patch notes"))
	}
}
