package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RunsReminders(t *testing.T) {
	runner := mocks.NewMockReminderRunner(t)
	log := newTestLogger(t)

	s := New(runner, 50*time.Millisecond, log)

	report := &domain.ReminderReport{Events24h: 1, Events1h: 0}
	runner.EXPECT().RunOnce(mock.Anything, mock.Anything).Return(report, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(runner.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	runner := mocks.NewMockReminderRunner(t)
	log := newTestLogger(t)

	s := New(runner, 50*time.Millisecond, log)

	runner.EXPECT().RunOnce(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(runner.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	runner := mocks.NewMockReminderRunner(t)
	log := newTestLogger(t)

	s := New(runner, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	runner := mocks.NewMockReminderRunner(t)
	log := newTestLogger(t)

	s := New(runner, 30*time.Millisecond, log)

	runner.EXPECT().RunOnce(mock.Anything, mock.Anything).Return(&domain.ReminderReport{}, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(runner.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
