package interfaces

import (
	"context"

	domaintypes "heroes/internal/domain/types"
)

// HeroGateway reads and writes heroes on the backend. Implementations never
// return errors: failures are logged and replaced by a fallback value (an empty
// slice for list results, nil for single results).
type HeroGateway interface {
	Heroes(ctx context.Context) []domaintypes.Hero
	Hero(ctx context.Context, id domaintypes.HeroID) *domaintypes.Hero
	Search(ctx context.Context, term string) []domaintypes.Hero
	Add(ctx context.Context, hero domaintypes.Hero) *domaintypes.Hero
	Delete(ctx context.Context, id domaintypes.HeroID) *domaintypes.Ack
	Update(ctx context.Context, hero domaintypes.Hero) *domaintypes.Ack
}
