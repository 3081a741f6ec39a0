package core

import (
	"context"

	"github.com/snipcheck/snipcheck/internal/engine"
	"github.com/snipcheck/snipcheck/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Result = engine.Result
type Example = types.Example

// Check is the stable entrypoint for other programs. It runs a full
// verification pass and returns the working set plus the missing examples.
func Check(ctx context.Context, cfg Config) (Result, error) {
	return engine.Run(ctx, cfg)
}
