package outbound

import "context"

// AudioTranscoderPort wraps the external media tool used for stitching.
// Concatenate must use stream-copy semantics (no re-encoding) and preserve
// the input order.
type AudioTranscoderPort interface {
	Concatenate(ctx context.Context, inputPaths []string, outputPath string) error
	ProbeDuration(ctx context.Context, path string) (float64, error)
}
