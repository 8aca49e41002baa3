package player

import "context"

// Loader produces the full ordered record set from the configured source.
type Loader interface {
	Load(ctx context.Context) ([]Player, error)
	Source() string
}
