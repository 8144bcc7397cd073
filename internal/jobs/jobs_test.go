package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLateOrderNotifier struct {
	mock.Mock
}

func (m *MockLateOrderNotifier) Handle(ctx context.Context, cmd commands.NotifyLateOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockJob struct {
	mock.Mock
}

func (m *MockJob) Name() string { return m.Called().String(0) }
func (m *MockJob) Start() error { return m.Called().Error(0) }
func (m *MockJob) Stop()        { m.Called() }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLateOrderJob(t *testing.T) {
	t.Run("should pass the tick time to the use case", func(t *testing.T) {
		handler := &MockLateOrderNotifier{}
		now := time.Date(2024, 5, 10, 19, 30, 0, 0, time.UTC)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.NotifyLateOrdersCommand) bool {
			return cmd.Now().Equal(now)
		})).Return(2, nil).Once()

		NewLateOrderJob(handler, "", discardLogger()).run(t.Context(), now)

		handler.AssertExpectations(t)
	})

	t.Run("should keep going when the use case fails", func(t *testing.T) {
		handler := &MockLateOrderNotifier{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("db down")).Twice()
		job := NewLateOrderJob(handler, "", discardLogger())

		job.run(t.Context(), time.Now())
		job.run(t.Context(), time.Now())

		handler.AssertExpectations(t)
	})

	t.Run("should default the schedule", func(t *testing.T) {
		job := NewLateOrderJob(&MockLateOrderNotifier{}, "", discardLogger())

		assert.Equal(t, DefaultLateOrderSchedule, job.schedule)
	})

	t.Run("should refuse an invalid schedule", func(t *testing.T) {
		job := NewLateOrderJob(&MockLateOrderNotifier{}, "every minute", discardLogger())

		require.Error(t, job.Start())
	})

	t.Run("should start and stop", func(t *testing.T) {
		job := NewLateOrderJob(&MockLateOrderNotifier{}, "0 0 3 * * *", discardLogger())

		require.NoError(t, job.Start())
		job.Stop()
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should stop started jobs in reverse order", func(t *testing.T) {
		var stopped []string
		first, second := &MockJob{}, &MockJob{}
		first.On("Start").Return(nil)
		first.On("Stop").Run(func(mock.Arguments) { stopped = append(stopped, "first") })
		second.On("Start").Return(nil)
		second.On("Stop").Run(func(mock.Arguments) { stopped = append(stopped, "second") })
		manager := NewJobManager(first, second)

		require.NoError(t, manager.StartAll())
		manager.StopAll()

		assert.Equal(t, []string{"second", "first"}, stopped)
	})

	t.Run("should roll back when a job fails to start", func(t *testing.T) {
		first, broken, never := &MockJob{}, &MockJob{}, &MockJob{}
		first.On("Start").Return(nil)
		first.On("Stop").Once()
		broken.On("Start").Return(errors.New("bad schedule"))
		broken.On("Name").Return("broken")
		manager := NewJobManager(first, broken, never)

		err := manager.StartAll()

		require.ErrorContains(t, err, "failed to start broken job")
		first.AssertExpectations(t)
		broken.AssertExpectations(t)
		never.AssertNotCalled(t, "Start")
	})
}
