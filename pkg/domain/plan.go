package domain

import "time"

// Plan is a subscriber's service tier, resolved from the external payment record
type Plan string

// known plan tiers
const (
	PlanFree  Plan = "free"
	PlanPro   Plan = "pro"
	PlanPower Plan = "power"
)

// Paid reports whether the plan is a paying tier
func (p Plan) Paid() bool {
	return p == PlanPro || p == PlanPower
}

// RefreshInterval returns how stale a feed may get before it is due for
// refresh under this plan
func (p Plan) RefreshInterval() time.Duration {
	if p.Paid() {
		return 60 * time.Minute
	}
	return 360 * time.Minute
}

// CreditLimit returns the plan-advertised soft credit limit per billing cycle.
// This is advisory only, the hard ceiling is enforced separately.
func (p Plan) CreditLimit() int {
	if p.Paid() {
		return 150
	}
	return 5
}

// Payment mirrors the active record of the external payment provider. The core
// reads it to resolve plan tier and billing period, never writes it.
type Payment struct {
	ID          int64
	UserID      string
	Plan        Plan
	Status      string
	PeriodStart time.Time
	PeriodEnd   time.Time
}
