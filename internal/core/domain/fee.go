package domain

// Platform fee parameters: 1% of the payout amount with a 25-cent floor.
const (
	feeRateBps = 100 // Basis points
	feeMinimum = 25  // Cents
)

// CalculateFee computes the platform fee for a payout amount in cents,
// rounded half-up to the nearest cent. Pure; negative amounts are a
// caller error and rejected upstream.
func CalculateFee(amount int64) int64 {
	fee := (amount*feeRateBps + 5000) / 10000
	if fee < feeMinimum {
		fee = feeMinimum
	}
	return fee
}
