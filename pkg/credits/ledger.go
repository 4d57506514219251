package credits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/rivsy/rivsy/pkg/domain"
	"github.com/rivsy/rivsy/pkg/repository"
)

// HardCeiling is the absolute per-cycle credit cap, enforced for every plan.
// Plan limits below it are advisory soft limits only.
const HardCeiling = 180

// softLimitPaid is the paid-plan soft limit; crossing it emits the one-time
// warning
const softLimitPaid = 150

// ErrLimitExceeded is returned when a subscriber has exhausted the hard
// credit ceiling for the current cycle
var ErrLimitExceeded = errors.New("AI credit limit exceeded")

//go:generate moq -out mocks/credit_store.go -pkg mocks -skip-ensure -fmt goimports . CreditStore

// CreditStore is the persistence surface the ledger needs
type CreditStore interface {
	FindOrCreateCycle(ctx context.Context, userID string, now, cycleStart, cycleEnd time.Time) (*domain.CreditCycle, error)
	IncrementUsage(ctx context.Context, cycleID int64, ceiling int) (int, error)
	GetActivePayment(ctx context.Context, userID string) (*domain.Payment, error)
}

// Ledger meters per-subscriber AI-credit usage within billing cycles and
// enforces the soft/hard threshold state machine
type Ledger struct {
	store CreditStore
	now   func() time.Time
}

// NewLedger creates a credit ledger over the given store
func NewLedger(store CreditStore) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// Plan resolves the subscriber's tier from the active payment record, free
// when none exists
func (l *Ledger) Plan(ctx context.Context, userID string) (domain.Plan, error) {
	payment, err := l.store.GetActivePayment(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.PlanFree, nil
		}
		return domain.PlanFree, fmt.Errorf("resolve plan for %s: %w", userID, err)
	}
	return payment.Plan, nil
}

// CurrentCycle returns the subscriber's active cycle status, lazily creating
// the cycle row when none overlaps now
func (l *Ledger) CurrentCycle(ctx context.Context, userID string) (domain.CreditStatus, error) {
	cycle, plan, err := l.activeCycle(ctx, userID)
	if err != nil {
		return domain.CreditStatus{}, err
	}
	return domain.CreditStatus{
		Used:     cycle.Used,
		Limit:    plan.CreditLimit(),
		CycleEnd: cycle.CycleEnd,
		Plan:     plan,
	}, nil
}

// CanUse reports whether the subscriber is below the hard ceiling. The
// plan-derived soft limit never blocks.
func (l *Ledger) CanUse(ctx context.Context, userID string) (bool, error) {
	status, err := l.CurrentCycle(ctx, userID)
	if err != nil {
		return false, err
	}
	return status.Used < HardCeiling, nil
}

// Consume takes one credit from the active cycle. The call that crosses the
// paid soft limit for the first time carries a one-shot warning; once the
// hard ceiling is reached the call fails with ErrLimitExceeded.
func (l *Ledger) Consume(ctx context.Context, userID string) (domain.ConsumeResult, error) {
	cycle, _, err := l.activeCycle(ctx, userID)
	if err != nil {
		return domain.ConsumeResult{}, err
	}
	if cycle.Used >= HardCeiling {
		return domain.ConsumeResult{}, fmt.Errorf("user %s: %w", userID, ErrLimitExceeded)
	}

	used, err := l.store.IncrementUsage(ctx, cycle.ID, HardCeiling)
	if err != nil {
		if errors.Is(err, repository.ErrCeiling) {
			// lost the race to a concurrent request that hit the ceiling first
			return domain.ConsumeResult{}, fmt.Errorf("user %s: %w", userID, ErrLimitExceeded)
		}
		return domain.ConsumeResult{}, fmt.Errorf("consume credit for %s: %w", userID, err)
	}

	result := domain.ConsumeResult{OK: true}
	if used == softLimitPaid+1 {
		result.Warning = "You have exceeded your plan limit. You can still use AI features until you reach 180 credits."
		lgr.Printf("[INFO] user %s exceeded soft credit limit", userID)
	}
	return result, nil
}

// activeCycle resolves the plan and the cycle overlapping now, creating the
// cycle lazily. Bounds come from the billing period of the active payment
// record when present, else the calendar month.
func (l *Ledger) activeCycle(ctx context.Context, userID string) (*domain.CreditCycle, domain.Plan, error) {
	now := l.now()

	plan := domain.PlanFree
	cycleStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	cycleEnd := cycleStart.AddDate(0, 1, 0)

	payment, err := l.store.GetActivePayment(ctx, userID)
	switch {
	case err == nil:
		plan = payment.Plan
		if !payment.PeriodStart.IsZero() && !payment.PeriodEnd.IsZero() {
			cycleStart, cycleEnd = payment.PeriodStart, payment.PeriodEnd
		}
	case !errors.Is(err, repository.ErrNotFound):
		return nil, plan, fmt.Errorf("resolve payment for %s: %w", userID, err)
	}

	cycle, err := l.store.FindOrCreateCycle(ctx, userID, now, cycleStart, cycleEnd)
	if err != nil {
		return nil, plan, fmt.Errorf("current cycle for %s: %w", userID, err)
	}
	return cycle, plan, nil
}
