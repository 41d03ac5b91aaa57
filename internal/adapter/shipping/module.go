package shipping

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/snstore/backend/internal/usecase"
)

// Module exposes the shipping quoter implementation to the fx graph.
var Module = fx.Provide(newQuoter)

type quoterParams struct {
	fx.In

	Logger *slog.Logger
}

func newQuoter(p quoterParams) usecase.ShippingQuoter {
	return NewStaticQuoter(p.Logger)
}
