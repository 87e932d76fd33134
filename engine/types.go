/*
types.go - Hour quantities and shared identifiers

PURPOSE:
  Hours is the one numeric type the engine aggregates: logged hours,
  expected hours, weekly totals. It wraps decimal.Decimal so that
  summing 0.1-hour increments over a month never drifts the way float
  accumulation does, and so occupation/efficiency percentages round
  deterministically.

USAGE:
  logged := engine.HoursFromFloat(7.5)
  total := logged.Add(engine.HoursFromInt(8))
  if total.GreaterThan(expected) { ... }

SEE ALSO:
  - schedule.go: weekly templates expressed in Hours
  - timesheet: per-day aggregation over Hours
*/
package engine

import "github.com/shopspring/decimal"

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string
type TaskID string

// ContractType keys the weekly work-schedule template an employee
// resolves to (e.g., "full_time_35h", "part_time_20h").
type ContractType string

// =============================================================================
// HOURS - Decimal-backed hour quantity
// =============================================================================

// MaxEntryHours bounds a single day's logged hours on one task.
const MaxEntryHours = 24

type Hours struct {
	Value decimal.Decimal
}

func HoursFromFloat(v float64) Hours { return Hours{Value: decimal.NewFromFloat(v)} }
func HoursFromInt(v int) Hours       { return Hours{Value: decimal.NewFromInt(int64(v))} }
func ZeroHours() Hours               { return Hours{Value: decimal.Zero} }

// ParseHours parses a decimal string ("7.5"). Empty parses as zero.
func ParseHours(s string) (Hours, error) {
	if s == "" {
		return ZeroHours(), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Hours{}, err
	}
	return Hours{Value: d}, nil
}

func (h Hours) Add(o Hours) Hours             { return Hours{Value: h.Value.Add(o.Value)} }
func (h Hours) Sub(o Hours) Hours             { return Hours{Value: h.Value.Sub(o.Value)} }
func (h Hours) IsZero() bool                  { return h.Value.IsZero() }
func (h Hours) IsPositive() bool              { return h.Value.IsPositive() }
func (h Hours) IsNegative() bool              { return h.Value.IsNegative() }
func (h Hours) Equal(o Hours) bool            { return h.Value.Equal(o.Value) }
func (h Hours) GreaterThan(o Hours) bool      { return h.Value.GreaterThan(o.Value) }
func (h Hours) GreaterOrEqual(o Hours) bool   { return h.Value.GreaterThanOrEqual(o.Value) }
func (h Hours) LessThan(o Hours) bool         { return h.Value.LessThan(o.Value) }

// Float64 returns the closest float64, for DTO serialization only.
func (h Hours) Float64() float64 {
	f, _ := h.Value.Float64()
	return f
}

// String returns the decimal form, suitable for storage round-trips.
func (h Hours) String() string { return h.Value.String() }

// PercentOf returns round(100 * h / denom). The boolean is false when
// denom is not positive: a period with no expected hours has no rate,
// which is not the same thing as a rate of zero.
func (h Hours) PercentOf(denom Hours) (int, bool) {
	if !denom.IsPositive() {
		return 0, false
	}
	pct := h.Value.Div(denom.Value).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart()), true
}
