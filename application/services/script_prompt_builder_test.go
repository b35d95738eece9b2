package services

import (
	"strings"
	"testing"

	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildScriptPrompt_GroupsBandsInPriorityOrder(t *testing.T) {
	t.Parallel()

	chunks := []domain.Chunk{
		domain.NewChunk("c-1", "doc-1", domain.OtherSection, "Misc", "general notes", 0),
		domain.NewChunk("c-2", "doc-1", domain.BugsFixesSection, "Login Fix", "fixed the login loop", 1),
		domain.NewChunk("c-3", "doc-1", domain.PlannedReleasesSection, "Q3 Roadmap", "dashboard is coming", 2),
	}

	prompt := BuildScriptPrompt(chunks)

	require.True(t, strings.HasPrefix(prompt, "NEWSLETTER CONTENT:\n"))

	planned := strings.Index(prompt, "## PLANNED RELEASES")
	bugs := strings.Index(prompt, "## BUGS & FIXES")
	other := strings.Index(prompt, "## OTHER UPDATES")
	require.Greater(t, planned, -1)
	require.Greater(t, bugs, planned)
	require.Greater(t, other, bugs)

	// Empty bands are omitted entirely.
	require.NotContains(t, prompt, "## TECH RELEASES")

	require.Contains(t, prompt, "### Q3 Roadmap\ndashboard is coming\n")
	require.Contains(t, prompt, "### Login Fix\nfixed the login loop\n")
}

func TestBuildScriptPrompt_KeepsChunkOrderWithinBand(t *testing.T) {
	t.Parallel()

	chunks := []domain.Chunk{
		domain.NewChunk("c-1", "doc-1", domain.TechReleasesSection, "First", "released alpha", 0),
		domain.NewChunk("c-2", "doc-1", domain.TechReleasesSection, "Second", "released beta", 1),
	}

	prompt := BuildScriptPrompt(chunks)

	require.Less(t, strings.Index(prompt, "### First"), strings.Index(prompt, "### Second"))
}
