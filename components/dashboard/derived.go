package dashboard

import "strconv"

// Inventory status labels derived from current vs optimal stock.
const (
	StockLow    = "Low Stock"
	StockMedium = "Medium Stock"
	StockGood   = "Good Stock"
)

// ConversionRate is conversions per visit as a percentage. ok is false when
// there were no visits.
func ConversionRate(conversions, visits int) (rate float64, ok bool) {
	if visits <= 0 {
		return 0, false
	}
	return float64(conversions) / float64(visits) * 100, true
}

// CostPerAcquisition is spend per conversion. Channels without spend or
// without conversions have no meaningful CPA.
func CostPerAcquisition(spend float64, conversions int) (cpa float64, ok bool) {
	if spend <= 0 || conversions <= 0 {
		return 0, false
	}
	return spend / float64(conversions), true
}

// BudgetUtilization is spent over budget as a percentage.
func BudgetUtilization(spent, budget float64) (pct float64, ok bool) {
	if budget <= 0 {
		return 0, false
	}
	return spent / budget * 100, true
}

// InventoryStatus classifies stock against its optimal level.
func InventoryStatus(current, optimal int) string {
	if optimal <= 0 {
		return NotAvailable
	}
	ratio := float64(current) / float64(optimal)
	switch {
	case ratio < 0.25:
		return StockLow
	case ratio < 0.5:
		return StockMedium
	default:
		return StockGood
	}
}

// fixed renders a guarded value with a fixed number of decimals and suffix,
// or N/A when the value is not available.
func fixed(value float64, ok bool, decimals int, suffix string) string {
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(value, 'f', decimals, 64) + suffix
}
