package engine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/hela-notan/internal/metrics"
	"github.com/donaldgifford/hela-notan/internal/store"
	storeMocks "github.com/donaldgifford/hela-notan/internal/store/mocks"
	domain "github.com/donaldgifford/hela-notan/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockRefresher struct {
	mock.Mock
}

func (m *mockRefresher) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newTestEngine(ms *storeMocks.MockStore, opts ...EngineOption) *Engine {
	opts = append([]EngineOption{
		WithLogger(quietLogger()),
		WithNowFunc(func() time.Time { return time.Unix(1700000000, 0) }),
	}, opts...)
	return NewEngine(ms, opts...)
}

func testCars() []domain.Listing {
	return []domain.Listing{
		{ID: "a", ModelKey: "RAV4", PriceSEK: 300000, AgeYears: 3, MileageMil: 4000, ModelYear: 2022},
		{ID: "b", ModelKey: "RAV4", PriceSEK: 250000, AgeYears: 5.5, MileageMil: 9000, ModelYear: 2019},
		{ID: "c", ModelKey: "RAV4", PriceSEK: 200001, AgeYears: 8, MileageMil: 15001, ModelYear: 2017},
		{ID: "d", ModelKey: "XC60", PriceSEK: 410000, AgeYears: 2, MileageMil: 3000, ModelYear: 2023},
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	got := Summarize(testCars())
	require.Len(t, got, 2)

	rav4 := got["RAV4"]
	assert.Equal(t, 3, rav4.Count)
	assert.Equal(t, 250000, rav4.AvgPrice)
	assert.Equal(t, 200001, rav4.MinPrice)
	assert.Equal(t, 300000, rav4.MaxPrice)
	assert.InDelta(t, 5.5, rav4.AvgAge, 1e-9)
	assert.Equal(t, 9334, rav4.AvgMileage)
	assert.Equal(t, [2]int{2017, 2022}, rav4.YearRange)
	assert.Equal(t, "2017–2022", rav4.YearSpan())

	xc60 := got["XC60"]
	assert.Equal(t, 1, xc60.Count)
	assert.Equal(t, 410000, xc60.AvgPrice)
	assert.Equal(t, [2]int{2023, 2023}, xc60.YearRange)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Summarize(nil))
}

func TestSummarize_AvgAgeOneDecimal(t *testing.T) {
	t.Parallel()

	got := Summarize([]domain.Listing{
		{ModelKey: "X3", AgeYears: 1, PriceSEK: 1},
		{ModelKey: "X3", AgeYears: 2, PriceSEK: 1},
		{ModelKey: "X3", AgeYears: 2, PriceSEK: 1},
	})
	assert.InDelta(t, 1.7, got["X3"].AvgAge, 1e-9)
}

func TestRunSummaryRefresh(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListCars(mock.Anything, mock.MatchedBy(func(q *store.CarQuery) bool { return q.All })).
		Return(testCars(), nil).
		Once()

	var stored json.RawMessage
	ms.EXPECT().
		PutCacheEntry(mock.Anything, store.KeySummary, mock.Anything).
		Run(func(_ context.Context, _ string, data json.RawMessage) { stored = data }).
		Return(nil).
		Once()

	eng := newTestEngine(ms)
	require.NoError(t, eng.RunSummaryRefresh(context.Background()))

	var decoded map[string]domain.ModelSummary
	require.NoError(t, json.Unmarshal(stored, &decoded))
	assert.Equal(t, 3, decoded["RAV4"].Count)
	assert.Contains(t, string(stored), `"avgPrice":250000`)
	assert.Contains(t, string(stored), `"yearRange":[2017,2022]`)

	assert.InDelta(t, 1700000000, ptestutil.ToFloat64(metrics.SummaryLastSuccessTimestamp), 1)
}

func TestRunSummaryRefresh_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupMock func(*storeMocks.MockStore)
		wantErr   string
	}{
		{
			name: "list fails",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListCars(mock.Anything, mock.Anything).
					Return(nil, errors.New("db down")).
					Once()
			},
			wantErr: "listing cars: db down",
		},
		{
			name: "store fails",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListCars(mock.Anything, mock.Anything).
					Return(testCars(), nil).
					Once()
				m.EXPECT().
					PutCacheEntry(mock.Anything, store.KeySummary, mock.Anything).
					Return(errors.New("read-only transaction")).
					Once()
			},
			wantErr: "storing summary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			before := ptestutil.ToFloat64(metrics.SummaryErrorsTotal)
			err := newTestEngine(ms).RunSummaryRefresh(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.SummaryErrorsTotal), before+1)
		})
	}
}

func TestRunModelWarmup(t *testing.T) {
	t.Parallel()

	t.Run("no cache configured", func(t *testing.T) {
		t.Parallel()
		eng := newTestEngine(storeMocks.NewMockStore(t))
		assert.NoError(t, eng.RunModelWarmup(context.Background()))
	})

	t.Run("refreshes", func(t *testing.T) {
		t.Parallel()
		mr := &mockRefresher{}
		mr.On("Refresh", mock.Anything).Return(nil).Once()

		eng := newTestEngine(storeMocks.NewMockStore(t), WithModels(mr))
		require.NoError(t, eng.RunModelWarmup(context.Background()))
		mr.AssertExpectations(t)
	})

	t.Run("wraps errors", func(t *testing.T) {
		t.Parallel()
		mr := &mockRefresher{}
		mr.On("Refresh", mock.Anything).Return(errors.New("timeout")).Once()

		eng := newTestEngine(storeMocks.NewMockStore(t), WithModels(mr))
		err := eng.RunModelWarmup(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refreshing models: timeout")
		mr.AssertExpectations(t)
	})
}
