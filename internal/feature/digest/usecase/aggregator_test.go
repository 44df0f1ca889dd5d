package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/domain/entity"
)

// countingLimiter はWaitIfNeededの呼び出し回数を記録します。
// Aggregateはgoroutine起動前に消費するため、カウントに同期は不要です。
type countingLimiter struct {
	calls int
}

func (c *countingLimiter) WaitIfNeeded() { c.calls++ }

func TestAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty ticker set returns empty map without provider calls", func(t *testing.T) {
		provider := &mockProvider{}
		limiter := &countingLimiter{}
		uc := NewDigestUsecase(&mockLedger{}, provider, &mockNotifier{}, &mockSink{}, limiter)

		out := uc.Aggregate(ctx, nil)

		assert.Empty(t, out)
		assert.Zero(t, provider.totalCalls())
		assert.Zero(t, limiter.calls)
	})

	t.Run("both halves succeed for every ticker", func(t *testing.T) {
		provider := &mockProvider{
			FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				return &entity.Quote{CurrentPrice: 42, PreviousClose: 40}, nil
			},
			FetchProfileFunc: func(ctx context.Context, symbol string) (*entity.Profile, error) {
				return &entity.Profile{Name: symbol + " Corp", Ticker: symbol}, nil
			},
		}
		uc := newTestUsecase(&mockLedger{}, provider, &mockNotifier{}, &mockSink{})

		out := uc.Aggregate(ctx, []string{"AAPL", "GOOG", "TSLA"})

		require.Len(t, out, 3)
		for _, ticker := range []string{"AAPL", "GOOG", "TSLA"} {
			require.Contains(t, out, ticker)
			assert.Equal(t, 42.0, out[ticker].Quote.CurrentPrice)
			assert.Equal(t, ticker+" Corp", out[ticker].Profile.Name)
		}
	})

	t.Run("one half failing keeps the other half", func(t *testing.T) {
		provider := &mockProvider{
			FetchProfileFunc: func(ctx context.Context, symbol string) (*entity.Profile, error) {
				return nil, ErrUpstream
			},
		}
		uc := newTestUsecase(&mockLedger{}, provider, &mockNotifier{}, &mockSink{})

		out := uc.Aggregate(ctx, []string{"AAPL"})

		require.Contains(t, out, "AAPL")
		assert.NotNil(t, out["AAPL"].Quote)
		assert.Nil(t, out["AAPL"].Profile)
	})

	t.Run("ticker with both halves failed is dropped, others survive", func(t *testing.T) {
		provider := &mockProvider{
			FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				if symbol == "BAD" {
					return nil, ErrSymbolNotFound
				}
				return &entity.Quote{CurrentPrice: 1}, nil
			},
			FetchProfileFunc: func(ctx context.Context, symbol string) (*entity.Profile, error) {
				if symbol == "BAD" {
					return nil, ErrSymbolNotFound
				}
				return &entity.Profile{Name: "Good Corp", Ticker: symbol}, nil
			},
		}
		uc := newTestUsecase(&mockLedger{}, provider, &mockNotifier{}, &mockSink{})

		out := uc.Aggregate(ctx, []string{"GOOD", "BAD"})

		assert.Len(t, out, 1)
		assert.Contains(t, out, "GOOD")
		assert.NotContains(t, out, "BAD")
	})

	t.Run("limiter is consumed twice per ticker", func(t *testing.T) {
		limiter := &countingLimiter{}
		uc := NewDigestUsecase(&mockLedger{}, &mockProvider{}, &mockNotifier{}, &mockSink{}, limiter)

		uc.Aggregate(ctx, []string{"A", "B", "C"})

		assert.Equal(t, 6, limiter.calls)
	})

	t.Run("every ticker is fetched exactly once per branch", func(t *testing.T) {
		provider := &mockProvider{}
		uc := newTestUsecase(&mockLedger{}, provider, &mockNotifier{}, &mockSink{})

		uc.Aggregate(ctx, []string{"A", "B"})

		assert.ElementsMatch(t, []string{"A", "B"}, provider.quoteCalls)
		assert.ElementsMatch(t, []string{"A", "B"}, provider.profileCalls)
	})
}
