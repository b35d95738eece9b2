package services

import (
	"strings"

	"github.com/SomSamantray/AI-Script-Creator/domain"
)

// narrationSystemPrompt is the fixed instruction sent with every script
// request. It asks for a single cohesive spoken narrative of 5-7 minutes,
// prose only, with no meta-commentary about the source format.
const narrationSystemPrompt = `You are an expert product storyteller and professional narrator, responsible for converting internal or external product newsletter content into a clear, engaging, and well-structured spoken narrative suitable for text-to-speech delivery.

Your task is to transform the provided newsletter content into a 5-7 minute audio script that sounds like a confident, polished product update being shared company-wide.

CORE OBJECTIVES
1. Convert the content into a natural, conversational spoken script
2. Dynamically identify, infer, or create clear section headings for features, enhancements, improvements, fixes, experiments and operational changes
3. Ensure the final output flows logically and feels intentional, even if the input is messy
4. Maintain a professional, confident, and friendly tone suitable for a company-wide audience

STRUCTURE RULES
- Refine existing headings for spoken delivery; infer logical sections when none exist
- Each section begins with a short spoken header, explains what changed, why it matters and how it helps
- Group related updates together instead of narrating line-by-line

CONTENT GUIDELINES
- Target a 5-7 minute spoken length
- Expand explanations only using information present in the input
- Break down technical updates into listener-friendly language; never invent features, data, or timelines
- Major features get deeper explanation, minor fixes shorter mentions

STRICT DO-NOT RULES
- Do NOT say "Welcome to the newsletter", "In this newsletter", "Let me read this out" or any meta-commentary about newsletters, sections, or formatting
- Do NOT use bullet points, numbers, markdown, or symbols
- Do NOT reference formatting, headings, or structure explicitly

OUTPUT FORMAT
- Write only the final spoken narrative, prose only, no formatting symbols
- Include spoken section headers naturally within the narration
- The script should sound smooth and confident when read aloud by a TTS engine`

var sectionBandTitles = map[domain.SectionType]string{
	domain.PlannedReleasesSection: "PLANNED RELEASES",
	domain.TechReleasesSection:    "TECH RELEASES",
	domain.BugsFixesSection:       "BUGS & FIXES",
	domain.OtherSection:           "OTHER UPDATES",
}

// BuildScriptPrompt groups chunks by classification into the four fixed
// bands, renders each chunk as a heading+body block and concatenates the
// bands in priority order into one textual payload.
func BuildScriptPrompt(chunks []domain.Chunk) string {
	grouped := make(map[domain.SectionType][]domain.Chunk, len(domain.SectionPriority))
	for _, chunk := range chunks {
		grouped[chunk.SectionType] = append(grouped[chunk.SectionType], chunk)
	}

	var content strings.Builder
	for _, sectionType := range domain.SectionPriority {
		band := grouped[sectionType]
		if len(band) == 0 {
			continue
		}
		content.WriteString("## " + sectionBandTitles[sectionType] + "\n\n")
		for _, chunk := range band {
			content.WriteString("### " + chunk.Heading + "\n")
			content.WriteString(chunk.Content + "\n\n")
		}
	}

	return "NEWSLETTER CONTENT:\n" + content.String()
}
