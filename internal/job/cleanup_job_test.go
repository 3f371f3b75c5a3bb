package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"user-status-service/internal/metrics"
)

// MockExpiredStatusClearer is a mock implementation of ExpiredStatusClearer
type MockExpiredStatusClearer struct {
	mock.Mock
}

func (m *MockExpiredStatusClearer) ClearExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	require.NoError(t, c.Write(metric))
	return metric.Counter.GetValue()
}

func TestExpiredStatusCleanupJob_Run(t *testing.T) {
	clearer := new(MockExpiredStatusClearer)
	clearer.On("ClearExpired", mock.Anything).Return(int64(3), nil).Once()

	core, logs := observer.New(zapcore.InfoLevel)
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	NewExpiredStatusCleanupJob(clearer, m, zap.New(core)).Run()

	clearer.AssertExpectations(t)
	assert.Equal(t, 1.0, counterValue(t, m.CleanupRunsTotal.WithLabelValues("success")))

	entries := logs.FilterMessage("Cleared expired statuses").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["count"])
}

func TestExpiredStatusCleanupJob_RunNothingExpired(t *testing.T) {
	clearer := new(MockExpiredStatusClearer)
	clearer.On("ClearExpired", mock.Anything).Return(int64(0), nil).Once()

	core, logs := observer.New(zapcore.InfoLevel)

	NewExpiredStatusCleanupJob(clearer, nil, zap.New(core)).Run()

	clearer.AssertExpectations(t)
	assert.Equal(t, 0, logs.Len())
}

func TestExpiredStatusCleanupJob_RunFailure(t *testing.T) {
	clearer := new(MockExpiredStatusClearer)
	clearer.On("ClearExpired", mock.Anything).Return(int64(0), errors.New("database is locked")).Once()

	core, logs := observer.New(zapcore.ErrorLevel)
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	NewExpiredStatusCleanupJob(clearer, m, zap.New(core)).Run()

	assert.Equal(t, 1.0, counterValue(t, m.CleanupRunsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1, logs.FilterMessage("Failed to clear expired statuses").Len())
}

func TestExpiredStatusCleanupJob_RunHasDeadline(t *testing.T) {
	clearer := new(MockExpiredStatusClearer)
	clearer.On("ClearExpired", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(int64(0), nil).Once()

	NewExpiredStatusCleanupJob(clearer, nil, zap.NewNop()).Run()

	clearer.AssertExpectations(t)
}

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Run() {
	j.runs.Add(1)
}

type panickingJob struct{}

func (panickingJob) Run() {
	panic("boom")
}

func TestScheduler_RunsJobs(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	job := &countingJob{}

	require.NoError(t, s.Add("counter", "@every 1s", job))
	assert.Equal(t, 1, s.Entries())

	s.Start()
	assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_RecoversPanics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	s := NewScheduler(zap.New(core))

	require.NoError(t, s.Add("panic", "@every 1s", panickingJob{}))
	s.Start()

	assert.Eventually(t, func() bool { return logs.Len() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	err := s.Add("broken", "every minute please", &countingJob{})
	assert.Error(t, err)
	assert.Equal(t, 0, s.Entries())
}
