package factory

import (
	"time"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/mocks"
	"github.com/pr-poehali-dev/major-registration-portal/internal/metrics"
	"github.com/pr-poehali-dev/major-registration-portal/internal/sampledata"
	"github.com/pr-poehali-dev/major-registration-portal/internal/storage/memory"
	"github.com/pr-poehali-dev/major-registration-portal/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockIDs     *mocks.MockIDs
	MockMetrics *metrics.Mock
	Memory      *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDs()
	mockMetrics := metrics.NewMock()
	store := memory.New(mockClock, DefaultDeviceTTL)

	set, err := sampledata.Default()
	if err != nil {
		panic(err)
	}

	app := newWithDependencies(store, mockClock, mockIDs, mockMetrics, set, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockIDs:     mockIDs,
		MockMetrics: mockMetrics,
		Memory:      store,
	}
}
