package shipping

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
)

func newQuoterForTest() *StaticQuoter {
	return NewStaticQuoter(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestQuoteValidation(t *testing.T) {
	q := newQuoterForTest()

	for _, cep := range []string{"", "0131010", "013101000", "01310a00"} {
		if _, err := q.Quote(context.Background(), cep); err == nil {
			t.Fatalf("expected error for %q", cep)
		} else if _, ok := domainErrors.AsValidation(err); !ok {
			t.Fatalf("expected validation error for %q, got %v", cep, err)
		}
	}
}

func TestQuoteOptions(t *testing.T) {
	q := newQuoterForTest()

	options, err := q.Quote(context.Background(), "01310100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}

	byService := map[string]int{}
	for _, opt := range options {
		byService[opt.Service] = opt.ETADays
	}
	if byService["Sedex"] != 2 || byService["PAC"] != 5 || byService["Retirada"] != 1 {
		t.Fatalf("unexpected southeast ETAs: %v", byService)
	}

	if !options[1].Cost.Equal(decimal.RequireFromString("15.90")) {
		t.Fatalf("unexpected PAC cost: %s", options[1].Cost)
	}
}

func TestQuoteRegionDelay(t *testing.T) {
	q := newQuoterForTest()

	options, err := q.Quote(context.Background(), "69005000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, opt := range options {
		switch opt.Service {
		case "Sedex":
			if opt.ETADays != 4 {
				t.Fatalf("unexpected Sedex ETA: %d", opt.ETADays)
			}
		case "Retirada":
			if opt.ETADays != 1 {
				t.Fatalf("pickup ETA should not vary by region: %d", opt.ETADays)
			}
		}
	}
}

func TestNewQuoterFromParams(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if q := newQuoter(quoterParams{Logger: logger}); q == nil {
		t.Fatal("expected quoter instance")
	}
}
