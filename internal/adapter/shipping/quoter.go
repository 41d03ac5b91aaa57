package shipping

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/model"
)

// StaticQuoter prices deliveries from a fixed rate table. The extra transit
// days depend on the postal region, the first digit of the CEP.
type StaticQuoter struct {
	logger *slog.Logger
}

type rate struct {
	service string
	baseETA int
	cost    string
}

var rateTable = []rate{
	{service: "Sedex", baseETA: 2, cost: "25.90"},
	{service: "PAC", baseETA: 5, cost: "15.90"},
	{service: "Retirada", baseETA: 1, cost: "0.00"},
}

func NewStaticQuoter(logger *slog.Logger) *StaticQuoter {
	return &StaticQuoter{logger: logger}
}

// Quote returns the available delivery options for an 8-digit CEP.
func (q *StaticQuoter) Quote(ctx context.Context, postalCode string) ([]model.ShippingOption, error) {
	if len(postalCode) != 8 {
		return nil, domainErrors.NewValidation("postal_code")
	}
	for _, c := range postalCode {
		if c < '0' || c > '9' {
			return nil, domainErrors.NewValidation("postal_code")
		}
	}

	extra := regionDelay(postalCode[0])

	options := make([]model.ShippingOption, 0, len(rateTable))
	for _, r := range rateTable {
		eta := r.baseETA
		if r.service != "Retirada" {
			eta += extra
		}
		options = append(options, model.ShippingOption{
			Service: r.service,
			ETADays: eta,
			Cost:    decimal.RequireFromString(r.cost),
		})
	}

	q.logger.Debug("shipping quote", slog.String("postal_code", postalCode), slog.Int("options", len(options)))
	return options, nil
}

// regionDelay maps CEP regions to additional transit days. Regions 0-3 cover
// the southeast, 8-9 the north, the rest fall in between.
func regionDelay(region byte) int {
	switch {
	case region <= '3':
		return 0
	case region <= '7':
		return 2
	default:
		return 4
	}
}
