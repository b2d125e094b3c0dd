package domain

import "strconv"

// IncentiveType classifies a reward.
type IncentiveType string

const (
	IncentiveCashback IncentiveType = "cashback"
	IncentivePoints   IncentiveType = "points"
	IncentiveVoucher  IncentiveType = "voucher"
)

// Incentive is a reward earned through giving.
type Incentive struct {
	ID          int
	Type        IncentiveType
	Amount      float64
	Description string
}

// Incentives returns the visitor's rewards.
func Incentives() []Incentive {
	return []Incentive{
		{ID: 1, Type: IncentiveCashback, Amount: 15.30, Description: "2% cashback earned"},
		{ID: 2, Type: IncentivePoints, Amount: 250, Description: "Bonus points for streak"},
		{ID: 3, Type: IncentiveVoucher, Amount: 10, Description: "Partner store voucher"},
	}
}

// CashbackTotal sums Amount over the cashback incentives only.
func CashbackTotal(incentives []Incentive) float64 {
	var total float64
	for _, in := range incentives {
		if in.Type == IncentiveCashback {
			total += in.Amount
		}
	}
	return total
}

// FormatAmount renders an amount with exactly two decimal digits.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// Display renders the amount the way the incentive list shows it.
func (in Incentive) Display() string {
	amount := strconv.FormatFloat(in.Amount, 'f', -1, 64)
	switch in.Type {
	case IncentivePoints:
		return amount + " pts"
	case IncentiveVoucher:
		return amount + " voucher"
	default:
		return amount
	}
}
