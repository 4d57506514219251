package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rivsy/rivsy/pkg/domain"
)

// CreditRepository handles credit-cycle and payment lookups. The increment is
// a single conditional UPDATE so concurrent enrichment requests from one
// subscriber cannot lose updates or overshoot the ceiling.
type CreditRepository struct {
	db *sqlx.DB
}

// creditCycleSQL represents a credit cycle for SQL operations
type creditCycleSQL struct {
	ID         int64     `db:"id"`
	UserID     string    `db:"user_id"`
	CycleStart time.Time `db:"cycle_start"`
	CycleEnd   time.Time `db:"cycle_end"`
	Used       int       `db:"used"`
	CreatedAt  time.Time `db:"created_at"`
}

// paymentSQL represents a payment record for SQL operations
type paymentSQL struct {
	ID          int64     `db:"id"`
	UserID      string    `db:"user_id"`
	Plan        string    `db:"plan"`
	Status      string    `db:"status"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(database *sqlx.DB) *CreditRepository {
	return &CreditRepository{db: database}
}

// FindOrCreateCycle returns the cycle overlapping now for the user, lazily
// creating one with the given bounds and used=0 when none exists
func (r *CreditRepository) FindOrCreateCycle(ctx context.Context, userID string, now, cycleStart, cycleEnd time.Time) (*domain.CreditCycle, error) {
	cycle, err := r.findCycle(ctx, userID, now)
	if err == nil {
		return cycle, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	query := `
		INSERT INTO ai_credits (user_id, cycle_start, cycle_end, used)
		VALUES (?, ?, ?, 0)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, cycleStart, cycleEnd); err != nil {
		return nil, fmt.Errorf("create credit cycle: %w", err)
	}

	// re-read instead of trusting the insert, a concurrent request may have
	// created the row first
	return r.findCycle(ctx, userID, now)
}

// findCycle returns the cycle whose window contains the given instant. The
// window is half-open: at the exact cycle_end instant the cycle is already
// over and the next one opens.
func (r *CreditRepository) findCycle(ctx context.Context, userID string, now time.Time) (*domain.CreditCycle, error) {
	var sqlCycle creditCycleSQL
	query := `
		SELECT * FROM ai_credits
		WHERE user_id = ? AND cycle_start <= ? AND cycle_end > ?
		ORDER BY id
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &sqlCycle, query, userID, now, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("credit cycle for %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("find credit cycle: %w", err)
	}

	return &domain.CreditCycle{
		ID:         sqlCycle.ID,
		UserID:     sqlCycle.UserID,
		CycleStart: sqlCycle.CycleStart,
		CycleEnd:   sqlCycle.CycleEnd,
		Used:       sqlCycle.Used,
		CreatedAt:  sqlCycle.CreatedAt,
	}, nil
}

// IncrementUsage atomically consumes one credit from the cycle, refusing once
// the hard ceiling is reached. Returns the new used count. The RETURNING
// clause makes the read-back part of the same statement, so concurrent
// consumes each see their own count and the soft-limit transition is observed
// exactly once.
func (r *CreditRepository) IncrementUsage(ctx context.Context, cycleID int64, ceiling int) (int, error) {
	var used int
	query := `
		UPDATE ai_credits
		SET used = used + 1
		WHERE id = ? AND used < ?
		RETURNING used
	`
	err := r.db.GetContext(ctx, &used, query, cycleID, ceiling)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("cycle %d: %w", cycleID, ErrCeiling)
		}
		return 0, fmt.Errorf("increment credit usage: %w", err)
	}
	return used, nil
}

// ResetCycle opens a fresh cycle for the user. Closed cycles are never
// mutated, reset always inserts a new row.
func (r *CreditRepository) ResetCycle(ctx context.Context, userID string, cycleStart, cycleEnd time.Time) error {
	query := `
		INSERT INTO ai_credits (user_id, cycle_start, cycle_end, used)
		VALUES (?, ?, ?, 0)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, cycleStart, cycleEnd); err != nil {
		return fmt.Errorf("reset credit cycle: %w", err)
	}
	return nil
}

// GetActivePayment returns the user's active payment record, or ErrNotFound
// for subscribers on the free tier
func (r *CreditRepository) GetActivePayment(ctx context.Context, userID string) (*domain.Payment, error) {
	var sqlPayment paymentSQL
	query := `
		SELECT * FROM payments
		WHERE user_id = ? AND status = 'active'
		ORDER BY id DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &sqlPayment, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment for %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("get active payment: %w", err)
	}

	return &domain.Payment{
		ID:          sqlPayment.ID,
		UserID:      sqlPayment.UserID,
		Plan:        domain.Plan(sqlPayment.Plan),
		Status:      sqlPayment.Status,
		PeriodStart: sqlPayment.PeriodStart,
		PeriodEnd:   sqlPayment.PeriodEnd,
	}, nil
}

// CreatePayment stores a payment record. Used by tests and the boundary layer
// mirroring provider webhooks, never by the core itself.
func (r *CreditRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (user_id, plan, status, period_start, period_end)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		payment.UserID, string(payment.Plan), payment.Status, payment.PeriodStart, payment.PeriodEnd)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	payment.ID = id
	return nil
}
