package ast

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LiteralKind discriminates the domain literal forms shared by
// LiteralExpr, LiteralPattern and LiteralType.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitString
	LitBool
	LitPercent
	LitMoney
	LitDate
	LitDuration
)

func (k LiteralKind) String() string {
	switch k {
	case LitInt:
		return "Int"
	case LitFloat:
		return "Float"
	case LitString:
		return "String"
	case LitBool:
		return "Boolean"
	case LitPercent:
		return "Percent"
	case LitMoney:
		return "Money"
	case LitDate:
		return "Date"
	case LitDuration:
		return "Duration"
	}
	return fmt.Sprintf("LiteralKind(%d)", int(k))
}

// MoneyCents decodes a money lexeme like "$100.50" into whole cents.
// The scanner guarantees exactly two fractional digits, so the value is
// exact: no float representation is ever involved.
func MoneyCents(lexeme string) (int64, error) {
	s := strings.TrimPrefix(lexeme, "$")
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || len(frac) != 2 {
		return 0, fmt.Errorf("malformed money literal %q", lexeme)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed money literal %q: %w", lexeme, err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed money literal %q: %w", lexeme, err)
	}
	return units*100 + cents, nil
}

// DateValue decodes a day-month-year lexeme like "15-01-2024".
func DateValue(lexeme string) (time.Time, error) {
	t, err := time.Parse("2-1-2006", lexeme)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date literal %q: %w", lexeme, err)
	}
	return t, nil
}

// DateOrdinal decodes a date lexeme into whole days since the Unix epoch,
// the integer encoding used by the solver bridge.
func DateOrdinal(lexeme string) (int64, error) {
	t, err := DateValue(lexeme)
	if err != nil {
		return 0, err
	}
	return t.Unix() / 86400, nil
}

// DurationDays decodes a duration lexeme like "30d", "6m" or "2y" into
// whole days. Months count 30 days and years 365; the coarse calendar is a
// declared policy of the duration type, not an approximation bug.
func DurationDays(lexeme string) (int64, error) {
	if len(lexeme) < 2 {
		return 0, fmt.Errorf("malformed duration literal %q", lexeme)
	}
	n, err := strconv.ParseInt(lexeme[:len(lexeme)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed duration literal %q: %w", lexeme, err)
	}
	switch lexeme[len(lexeme)-1] {
	case 'd':
		return n, nil
	case 'm':
		return n * 30, nil
	case 'y':
		return n * 365, nil
	}
	return 0, fmt.Errorf("malformed duration literal %q", lexeme)
}

// PercentValue decodes a percent lexeme like "25%" or "12.5%".
func PercentValue(lexeme string) (float64, error) {
	s := strings.TrimSuffix(lexeme, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed percent literal %q: %w", lexeme, err)
	}
	return v, nil
}
