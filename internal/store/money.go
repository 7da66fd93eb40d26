package store

import "math"

// RoundMoney rounds a dollar amount to the 4 decimal places the ledger stores.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*10000) / 10000
}
