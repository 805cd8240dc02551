package auditor

import (
	"context"
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type driftChecker interface {
	CheckCounterDrift(ctx context.Context) ([]domain.CounterDrift, error)
}

// Auditor periodically checks that every event's reserved counter matches
// the sum of ticket counts over its active bookings. It only observes and
// logs; it never repairs, so a drift report always means a bug upstream.
type Auditor struct {
	checker  driftChecker
	interval time.Duration
	logger   logger.Logger
}

func New(checker driftChecker, interval time.Duration, logger logger.Logger) *Auditor {
	return &Auditor{
		checker:  checker,
		interval: interval,
		logger:   logger,
	}
}

func (a *Auditor) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.logger.Info("counter auditor started",
		logger.Duration("interval", a.interval),
	)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("counter auditor stopped")
			return
		case <-ticker.C:
			a.tick(ctx)
		}
	}
}

func (a *Auditor) tick(ctx context.Context) {
	drifts, err := a.checker.CheckCounterDrift(ctx)
	if err != nil {
		a.logger.Error("counter drift check failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, d := range drifts {
		a.logger.Error("reserved counter drift detected",
			logger.String("event_id", d.EventID),
			logger.Int("reserved", d.Reserved),
			logger.Int("active_tickets", d.ActiveTickets),
		)
	}
}
