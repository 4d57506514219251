package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlan_Paid(t *testing.T) {
	assert.False(t, PlanFree.Paid())
	assert.True(t, PlanPro.Paid())
	assert.True(t, PlanPower.Paid())
	assert.False(t, Plan("unknown").Paid())
}

func TestPlan_RefreshInterval(t *testing.T) {
	assert.Equal(t, 360*time.Minute, PlanFree.RefreshInterval())
	assert.Equal(t, 60*time.Minute, PlanPro.RefreshInterval())
	assert.Equal(t, 60*time.Minute, PlanPower.RefreshInterval())
	// unknown plans degrade to the free tier interval
	assert.Equal(t, 360*time.Minute, Plan("unknown").RefreshInterval())
}

func TestPlan_CreditLimit(t *testing.T) {
	assert.Equal(t, 5, PlanFree.CreditLimit())
	assert.Equal(t, 150, PlanPro.CreditLimit())
	assert.Equal(t, 150, PlanPower.CreditLimit())
}

func TestCreditStatus_Remaining(t *testing.T) {
	tests := []struct {
		name string
		used int
		lim  int
		want int
	}{
		{"untouched", 0, 5, 5},
		{"partial", 3, 5, 2},
		{"exactly at limit", 5, 5, 0},
		{"over limit never negative", 151, 150, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CreditStatus{Used: tt.used, Limit: tt.lim}
			assert.Equal(t, tt.want, s.Remaining())
		})
	}
}

func TestPlatform(t *testing.T) {
	assert.True(t, PlatformTwitter.Valid())
	assert.True(t, PlatformLinkedIn.Valid())
	assert.True(t, PlatformReddit.Valid())
	assert.False(t, Platform("myspace").Valid())

	assert.Equal(t, 280, PlatformTwitter.MaxLength())
	assert.Equal(t, 3000, PlatformLinkedIn.MaxLength())
	assert.Equal(t, 40000, PlatformReddit.MaxLength())
}

func TestTone(t *testing.T) {
	assert.True(t, ToneProfessional.Valid())
	assert.True(t, ToneCasual.Valid())
	assert.True(t, ToneEngaging.Valid())
	assert.False(t, Tone("sarcastic").Valid())
}
