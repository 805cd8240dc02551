package auditor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nikgolev/TicketGate/internal/auditor/mocks"
	"github.com/nikgolev/TicketGate/internal/domain"
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

func TestAuditor_Tick_ReportsDrift(t *testing.T) {
	checker := mocks.NewMockDriftChecker(t)
	log := newTestLogger(t)

	a := New(checker, 50*time.Millisecond, log)

	drifts := []domain.CounterDrift{
		{EventID: "e1", Reserved: 5, ActiveTickets: 3},
	}
	checker.EXPECT().CheckCounterDrift(mock.Anything).Return(drifts, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(checker.Calls), 1)
}

func TestAuditor_Tick_HandlesError(t *testing.T) {
	checker := mocks.NewMockDriftChecker(t)
	log := newTestLogger(t)

	a := New(checker, 50*time.Millisecond, log)

	checker.EXPECT().CheckCounterDrift(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(checker.Calls), 1)
}

func TestAuditor_StopsOnContextCancel(t *testing.T) {
	checker := mocks.NewMockDriftChecker(t)
	log := newTestLogger(t)

	a := New(checker, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		a.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("auditor did not stop on context cancel")
	}
}
