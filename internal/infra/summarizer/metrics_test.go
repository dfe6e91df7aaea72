package summarizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusSummaryMetrics(t *testing.T) {
	metrics := NewPrometheusSummaryMetrics()

	require.NotNil(t, metrics)
	assert.NotNil(t, metrics.lengthHistogram)
	assert.NotNil(t, metrics.exceededCounter)
	assert.NotNil(t, metrics.complianceGauge)
	assert.NotNil(t, metrics.durationHistogram)
}

func TestNewPrometheusSummaryMetrics_Singleton(t *testing.T) {
	metrics1 := NewPrometheusSummaryMetrics()
	metrics2 := NewPrometheusSummaryMetrics()

	// Should be the same instance (singleton pattern)
	assert.Equal(t, metrics1, metrics2)
}

func TestPrometheusSummaryMetrics_RecordLength(t *testing.T) {
	metrics := NewPrometheusSummaryMetrics()

	tests := []struct {
		name   string
		length int
	}{
		{
			name:   "short summary",
			length: 100,
		},
		{
			name:   "at limit",
			length: 500,
		},
		{
			name:   "over limit",
			length: 700,
		},
		{
			name:   "zero length",
			length: 0,
		},
		{
			name:   "negative length is recorded (no validation)",
			length: -100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				metrics.RecordLength(tt.length)
			})
		})
	}
}

func TestPrometheusSummaryMetrics_RecordLimitExceeded(t *testing.T) {
	metrics := NewPrometheusSummaryMetrics()

	assert.NotPanics(t, func() {
		metrics.RecordLimitExceeded()
		metrics.RecordLimitExceeded()
		metrics.RecordLimitExceeded()
	})
}

func TestPrometheusSummaryMetrics_RecordCompliance(t *testing.T) {
	metrics := NewPrometheusSummaryMetrics()

	tests := []struct {
		name        string
		withinLimit bool
	}{
		{
			name:        "within limit",
			withinLimit: true,
		},
		{
			name:        "exceeds limit",
			withinLimit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				metrics.RecordCompliance(tt.withinLimit)
			})
		})
	}
}

func TestPrometheusSummaryMetrics_RecordDuration(t *testing.T) {
	metrics := NewPrometheusSummaryMetrics()

	tests := []struct {
		name     string
		duration time.Duration
	}{
		{
			name:     "fast response",
			duration: 100 * time.Millisecond,
		},
		{
			name:     "normal response",
			duration: 1 * time.Second,
		},
		{
			name:     "slow response",
			duration: 5 * time.Second,
		},
		{
			name:     "zero duration",
			duration: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				metrics.RecordDuration(tt.duration)
			})
		})
	}
}

func TestPrometheusSummaryMetrics_ConcurrentAccess(t *testing.T) {
	metrics := NewPrometheusSummaryMetrics()

	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func() {
			metrics.RecordLength(400)
			metrics.RecordLimitExceeded()
			metrics.RecordCompliance(true)
			metrics.RecordDuration(1 * time.Second)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

// MockMetricsRecorder is a mock implementation for testing
type MockMetricsRecorder struct {
	RecordedLengths    []int
	RecordedExceeded   int
	RecordedCompliance []bool
	RecordedDurations  []time.Duration
}

func (m *MockMetricsRecorder) RecordLength(length int) {
	m.RecordedLengths = append(m.RecordedLengths, length)
}

func (m *MockMetricsRecorder) RecordLimitExceeded() {
	m.RecordedExceeded++
}

func (m *MockMetricsRecorder) RecordCompliance(withinLimit bool) {
	m.RecordedCompliance = append(m.RecordedCompliance, withinLimit)
}

func (m *MockMetricsRecorder) RecordDuration(duration time.Duration) {
	m.RecordedDurations = append(m.RecordedDurations, duration)
}

func TestMetricsInterface(t *testing.T) {
	t.Run("PrometheusSummaryMetrics implements interface", func(t *testing.T) {
		var _ SummaryMetricsRecorder = NewPrometheusSummaryMetrics()
	})

	t.Run("MockMetricsRecorder implements interface", func(t *testing.T) {
		var _ SummaryMetricsRecorder = &MockMetricsRecorder{}
	})
}

func TestMockMetricsRecorder_AllMethods(t *testing.T) {
	mock := &MockMetricsRecorder{}

	mock.RecordLength(400)
	mock.RecordCompliance(true)
	mock.RecordDuration(1 * time.Second)

	mock.RecordLength(600)
	mock.RecordLimitExceeded()
	mock.RecordCompliance(false)
	mock.RecordDuration(2 * time.Second)

	assert.Equal(t, []int{400, 600}, mock.RecordedLengths)
	assert.Equal(t, 1, mock.RecordedExceeded)
	assert.Equal(t, []bool{true, false}, mock.RecordedCompliance)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, mock.RecordedDurations)
}
