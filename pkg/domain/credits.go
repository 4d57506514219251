package domain

import "time"

// CreditCycle is a subscriber's credit-accounting window. Exactly one cycle
// overlaps any instant for a given subscriber; reset creates a new row and
// never mutates a closed one.
type CreditCycle struct {
	ID         int64
	UserID     string
	CycleStart time.Time
	CycleEnd   time.Time
	Used       int
	CreatedAt  time.Time
}

// CreditStatus is the subscriber-facing view of the current cycle
type CreditStatus struct {
	Used     int
	Limit    int
	CycleEnd time.Time
	Plan     Plan
}

// Remaining returns credits left under the plan soft limit, never negative
func (s CreditStatus) Remaining() int {
	if s.Used >= s.Limit {
		return 0
	}
	return s.Limit - s.Used
}

// ConsumeResult reports the outcome of a single credit consumption
type ConsumeResult struct {
	OK      bool
	Warning string
}
