package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFee(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   int64
	}{
		{"one percent of $100", 10000, 100},
		{"one percent of $250.50", 25050, 251}, // 250.5 cents rounds up
		{"minimum fee on small amount", 100, 25},
		{"minimum fee on $25 exactly", 2500, 25},
		{"just above minimum threshold", 2600, 26},
		{"zero amount still charges minimum", 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateFee(tt.amount))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Foo@Bar.COM ", "foo@bar.com"},
		{"  alice@example.com", "alice@example.com"},
		{"BOB@EXAMPLE.COM", "bob@example.com"},
		{"carol@example.com", "carol@example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestNewClaimToken(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := NewClaimToken()
		require.NoError(t, err)
		assert.Len(t, token, 64)
		_, dup := seen[token]
		assert.False(t, dup, "claim tokens must be unique")
		seen[token] = struct{}{}
	}
}

func TestNewAuthToken_Length(t *testing.T) {
	token, err := NewAuthToken()
	require.NoError(t, err)
	assert.Len(t, token, 48)
}

func TestPayout_IsClaimable(t *testing.T) {
	now := time.Now()
	p := &Payout{Status: PayoutStatusSent, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, p.IsClaimable(now))

	p.Status = PayoutStatusClaimed
	assert.False(t, p.IsClaimable(now))
	assert.True(t, p.IsTerminal())

	p.Status = PayoutStatusSent
	assert.False(t, p.IsClaimable(now.Add(2*time.Hour)), "past expiry")
}

func TestMerchantBalance_CanReserve(t *testing.T) {
	b := &MerchantBalance{Available: 1000}
	assert.True(t, b.CanReserve(900, 100))
	assert.False(t, b.CanReserve(901, 100))
}

func TestRecipient_CanAutoDeliver(t *testing.T) {
	r := &Recipient{AutoWithdraw: true, WalletAddress: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"}
	assert.True(t, r.CanAutoDeliver())

	r.AutoWithdraw = false
	assert.False(t, r.CanAutoDeliver())

	r.AutoWithdraw = true
	r.WalletAddress = ""
	assert.False(t, r.CanAutoDeliver())
}

func TestAggregateBatchStatus(t *testing.T) {
	assert.Equal(t, BatchStatusCompleted, AggregateBatchStatus(3, 0))
	assert.Equal(t, BatchStatusPartial, AggregateBatchStatus(2, 1))
	assert.Equal(t, BatchStatusFailed, AggregateBatchStatus(0, 3))
}
