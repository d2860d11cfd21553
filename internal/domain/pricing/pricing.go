// Package pricing computes estimate totals and the 30/40/30 installment split.
//
// All functions are pure. Inputs are not re-validated here; line item
// construction is the only guard against negative costs or quantities.
package pricing

import (
	"math"

	"ucraft_estimates/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RoundingUnit is the currency boundary final prices are truncated to.
const RoundingUnit = 1000

var (
	unit          = decimal.NewFromInt(RoundingUnit)
	contractRatio = decimal.RequireFromString("0.30")
	middleRatio   = decimal.RequireFromString("0.40")

	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
	// largest whole-unit totals representable as int64
	maxFinal = maxAmount.Div(unit).Floor().Mul(unit)
	minFinal = minAmount.Div(unit).Ceil().Mul(unit)
)

// LineFigures holds the derived prices of one line item.
type LineFigures struct {
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Installments is the payment schedule for a final price.
type Installments struct {
	Contract int64
	Middle   int64
	Balance  int64
}

func (i Installments) Sum() int64 {
	return i.Contract + i.Middle + i.Balance
}

// Amount returns the amount due for one installment.
func (i Installments) Amount(kind entities.Installment) int64 {
	switch kind {
	case entities.InstallmentContract:
		return i.Contract
	case entities.InstallmentMiddle:
		return i.Middle
	case entities.InstallmentBalance:
		return i.Balance
	}
	return 0
}

// Totals is everything a document needs, computed once.
type Totals struct {
	Subtotal     decimal.Decimal
	Final        int64
	Installments Installments
	Lines        []LineFigures
}

// Line derives unit price and line total for a single item.
func Line(it entities.LineItem) LineFigures {
	up := decimal.NewFromFloat(it.MaterialCost).Add(decimal.NewFromFloat(it.LaborCost))
	return LineFigures{
		UnitPrice: up,
		LineTotal: up.Mul(decimal.NewFromFloat(it.Quantity)),
	}
}

// Subtotal is the sum of (material + labor) * quantity over items. Not rounded.
func Subtotal(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(Line(it).LineTotal)
	}
	return sum
}

// RoundedTotal truncates amount down to the nearest RoundingUnit.
func RoundedTotal(amount decimal.Decimal) int64 {
	return floorToUnit(amount)
}

// Split divides a final price into contract (30%), middle (40%) and balance.
// Balance is the remainder, so the three parts always add up to final.
func Split(final int64) Installments {
	total := decimal.NewFromInt(final)
	contract := floorToUnit(total.Mul(contractRatio))
	middle := floorToUnit(total.Mul(middleRatio))
	return Installments{
		Contract: contract,
		Middle:   middle,
		Balance:  final - contract - middle,
	}
}

// InRange reports whether the rounded total of items fits the int64 amounts
// prices and installments are stored in. Out-of-range totals are clamped by
// RoundedTotal, so callers persisting a price must check this first.
func InRange(items []entities.LineItem) bool {
	f := Subtotal(items).Div(unit).Floor().Mul(unit)
	return f.Cmp(maxFinal) <= 0 && f.Cmp(minFinal) >= 0
}

// Compute runs the whole engine over items.
func Compute(items []entities.LineItem) Totals {
	lines := make([]LineFigures, len(items))
	sum := decimal.Zero
	for i, it := range items {
		lines[i] = Line(it)
		sum = sum.Add(lines[i].LineTotal)
	}
	final := RoundedTotal(sum)
	return Totals{
		Subtotal:     sum,
		Final:        final,
		Installments: Split(final),
		Lines:        lines,
	}
}

// ForPrice builds totals for an estimate whose items are unknown, from its cached price.
func ForPrice(price int64) Totals {
	final := RoundedTotal(decimal.NewFromInt(price))
	return Totals{
		Subtotal:     decimal.NewFromInt(price),
		Final:        final,
		Installments: Split(final),
	}
}

// DisplayAmount rounds a fractional figure to a whole currency unit for printing.
func DisplayAmount(d decimal.Decimal) int64 {
	return clamp(d.Round(0), minAmount, maxAmount)
}

func floorToUnit(d decimal.Decimal) int64 {
	return clamp(d.Div(unit).Floor().Mul(unit), minFinal, maxFinal)
}

// clamp converts d to int64, saturating instead of wrapping.
func clamp(d, lo, hi decimal.Decimal) int64 {
	if d.Cmp(hi) > 0 {
		return hi.IntPart()
	}
	if d.Cmp(lo) < 0 {
		return lo.IntPart()
	}
	return d.IntPart()
}
