package models

import "github.com/shopspring/decimal"

// FormatAmount renders a monetary amount with two decimal places.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatPrice renders a security price with three decimal places.
func FormatPrice(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(3)
}

// FormatShares renders a share quantity with three decimal places.
func FormatShares(shares float64) string {
	return decimal.NewFromFloat(shares).StringFixed(3)
}
