package ports

import "context"

// CodeGenerator produces application source code from a natural-language
// description. Implementations are expected to return post-processed,
// heuristically validated code or a generation sentinel error.
type CodeGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
