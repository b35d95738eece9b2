package outbound

import "context"

type GenerateScriptRequest struct {
	SystemPrompt string
	UserPrompt   string
}

// ScriptGeneratorPort produces a complete narration script from a prompt
// payload. An empty script or a collaborator error is a hard failure; no
// partial script is ever returned.
type ScriptGeneratorPort interface {
	Generate(ctx context.Context, req GenerateScriptRequest) (string, error)
}
