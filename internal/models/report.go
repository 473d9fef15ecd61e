package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrAmountOverflow is returned when a price does not fit in int64.
var ErrAmountOverflow = errors.New("amount overflows int64")

// Pricing is the flat per-head rate applied to every reservation.
type Pricing struct {
	AdultRate int64  `yaml:"adult_rate"`
	ChildRate int64  `yaml:"child_rate"`
	Currency  string `yaml:"currency"`
}

func DefaultPricing() Pricing {
	return Pricing{
		AdultRate: DefaultAdultRate,
		ChildRate: DefaultChildRate,
		Currency:  DefaultCurrency,
	}
}

func (p Pricing) Subtotal(r Reservation) (int64, error) {
	adults, ok := mulAmount(int64(r.Adults), p.AdultRate)
	if !ok {
		return 0, fmt.Errorf("%w: reservation %d adults", ErrAmountOverflow, r.ID)
	}
	children, ok := mulAmount(int64(r.Children), p.ChildRate)
	if !ok {
		return 0, fmt.Errorf("%w: reservation %d children", ErrAmountOverflow, r.ID)
	}
	total, ok := addAmount(adults, children)
	if !ok {
		return 0, fmt.Errorf("%w: reservation %d subtotal", ErrAmountOverflow, r.ID)
	}
	return total, nil
}

type ReportRow struct {
	Reservation
	Subtotal int64 `json:"subtotal"`
}

type Report struct {
	Rows          []ReportRow `json:"rows"`
	TotalAdults   int         `json:"total_adults"`
	TotalChildren int         `json:"total_children"`
	GrandTotal    int64       `json:"grand_total"`
	Currency      string      `json:"currency"`
}

// BuildReport prices every reservation in order and accumulates the totals.
// It fails with ErrAmountOverflow instead of wrapping around.
func BuildReport(reservations []Reservation, pricing Pricing) (Report, error) {
	report := Report{
		Rows:     make([]ReportRow, 0, len(reservations)),
		Currency: pricing.Currency,
	}
	for _, r := range reservations {
		subtotal, err := pricing.Subtotal(r)
		if err != nil {
			return Report{}, err
		}
		grand, ok := addAmount(report.GrandTotal, subtotal)
		if !ok {
			return Report{}, fmt.Errorf("%w: grand total", ErrAmountOverflow)
		}

		report.Rows = append(report.Rows, ReportRow{Reservation: r, Subtotal: subtotal})
		report.TotalAdults += r.Adults
		report.TotalChildren += r.Children
		report.GrandTotal = grand
	}
	return report, nil
}

// mulAmount and addAmount expect non-negative operands.
func mulAmount(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

func addAmount(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}
