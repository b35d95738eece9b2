package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/inbound"
	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/google/uuid"
)

const (
	// implicitHeading labels content that appears before any heading.
	implicitHeading = "Introduction"
	// minCapsHeadingLength guards against short shouty lines ("FIX ME")
	// being treated as section boundaries.
	minCapsHeadingLength = 5
	// defaultParagraphChunkSize bounds chunks built by the paragraph
	// fallback segmenter.
	defaultParagraphChunkSize = 2000
)

// sectionKeywords drive classification. Categories are tested in the order
// of domain.SectionPriority; the first category with a matching keyword wins.
var sectionKeywords = map[domain.SectionType][]string{
	domain.PlannedReleasesSection: {"planned release", "upcoming release", "planned feature", "roadmap"},
	domain.TechReleasesSection:    {"tech release", "new feature", "technical release", "released"},
	domain.BugsFixesSection:       {"bug fix", "bugfix", "fixed", "resolved", "patch"},
}

type parsedSection struct {
	heading string
	content string
}

type textSegmenter struct {
	logger            outbound.LoggerPort
	capsHeadingRegexp *regexp.Regexp
	markerRegexp      *regexp.Regexp
	paragraphMaxSize  int
}

func NewTextSegmenter(logger outbound.LoggerPort) inbound.TextSegmenterPort {
	return &textSegmenter{
		logger:            logger,
		capsHeadingRegexp: regexp.MustCompile(`^[A-Z0-9\s:]+$`),
		markerRegexp:      regexp.MustCompile(`^#+\s*`),
		paragraphMaxSize:  defaultParagraphChunkSize,
	}
}

// Segment splits the text on heading boundaries and classifies each section.
// When the text has no recognizable headings and is too large for one
// synthesis-friendly section, it falls back to paragraph accumulation.
func (s *textSegmenter) Segment(documentID string, text string) []domain.Chunk {
	sections := s.splitByHeadings(text)

	noHeadings := len(sections) == 1 && sections[0].heading == implicitHeading
	if noHeadings && len(sections[0].content) > s.paragraphMaxSize {
		sections = s.splitByParagraphs(text)
	}

	chunks := make([]domain.Chunk, 0, len(sections))
	for i, section := range sections {
		chunks = append(chunks, domain.NewChunk(
			uuid.NewString(),
			documentID,
			classifySection(section.heading, section.content),
			section.heading,
			section.content,
			i,
		))
	}

	s.logger.DebugWithFields("Segmented document text", map[string]interface{}{
		"document_id": documentID,
		"chunks":      len(chunks),
	})

	return chunks
}

// splitByHeadings treats a line as a section boundary if it starts with a
// markdown heading marker, or if it is longer than five characters, entirely
// upper case and made of letters, digits, spaces and colons only.
func (s *textSegmenter) splitByHeadings(text string) []parsedSection {
	lines := strings.Split(text, "\n")
	sections := make([]parsedSection, 0)
	currentHeading := implicitHeading
	var currentContent []string

	flush := func() {
		if len(currentContent) > 0 {
			sections = append(sections, parsedSection{
				heading: currentHeading,
				content: strings.TrimSpace(strings.Join(currentContent, "\n")),
			})
			currentContent = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		isMarkdownHeading := strings.HasPrefix(trimmed, "#")
		isCapsHeading := len(trimmed) > minCapsHeadingLength &&
			trimmed == strings.ToUpper(trimmed) &&
			s.capsHeadingRegexp.MatchString(trimmed)

		if isMarkdownHeading || isCapsHeading {
			flush()
			currentHeading = s.markerRegexp.ReplaceAllString(trimmed, "")
		} else if len(trimmed) > 0 {
			currentContent = append(currentContent, line)
		}
	}

	flush()

	return sections
}

// splitByParagraphs accumulates blank-line-delimited paragraphs into
// sections of at most paragraphMaxSize characters. Headings are synthetic
// ("Section N") since the source had none.
func (s *textSegmenter) splitByParagraphs(text string) []parsedSection {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if trimmed := strings.TrimSpace(p); len(trimmed) > 0 {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	sections := make([]parsedSection, 0)
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			sections = append(sections, parsedSection{
				heading: sectionHeading(len(sections) + 1),
				content: strings.TrimSpace(current.String()),
			})
			current.Reset()
		}
	}

	for _, paragraph := range paragraphs {
		if current.Len() > 0 && current.Len()+len(paragraph) > s.paragraphMaxSize {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(paragraph)
	}

	flush()

	return sections
}

func sectionHeading(n int) string {
	return "Section " + strconv.Itoa(n)
}

// classifySection is a pure function of the heading and content text:
// identical input always yields the same section type.
func classifySection(heading string, content string) domain.SectionType {
	combined := strings.ToLower(heading + " " + content)

	for _, sectionType := range domain.SectionPriority {
		for _, keyword := range sectionKeywords[sectionType] {
			if strings.Contains(combined, keyword) {
				return sectionType
			}
		}
	}

	return domain.OtherSection
}
