package listing

import (
	"github.com/shopspring/decimal"

	"github.com/atomicstack/loandesk/internal/domain"
	"github.com/atomicstack/loandesk/internal/format/money"
)

// Kind selects how a stat value is rendered.
type Kind int

const (
	KindCount Kind = iota
	KindMoney
	KindPercent
	KindNumber
	KindCompactMoney
)

// Reducer folds a full record list into one number.
type Reducer[T any] func([]T) decimal.Decimal

// Summary declares one stat card.
type Summary[T any] struct {
	Label  string
	Kind   Kind
	Tone   domain.Tone
	Reduce Reducer[T]
}

// Stat is a computed stat card.
type Stat struct {
	Label string
	Kind  Kind
	Tone  domain.Tone
	Value decimal.Decimal
}

// Display renders the value according to its kind.
func (s Stat) Display() string {
	switch s.Kind {
	case KindMoney:
		return money.Format(s.Value)
	case KindCompactMoney:
		return money.Compact(s.Value)
	case KindPercent:
		return money.Percent(s.Value)
	case KindNumber:
		return money.Number(s.Value)
	default:
		return s.Value.Truncate(0).String()
	}
}

// Summarize computes every summary over the full list.
func Summarize[T any](records []T, summaries []Summary[T]) []Stat {
	stats := make([]Stat, 0, len(summaries))
	for _, s := range summaries {
		value := decimal.Zero
		if s.Reduce != nil {
			value = s.Reduce(records)
		}
		stats = append(stats, Stat{Label: s.Label, Kind: s.Kind, Tone: s.Tone, Value: value})
	}
	return stats
}

func Count[T any]() Reducer[T] {
	return func(records []T) decimal.Decimal {
		return decimal.NewFromInt(int64(len(records)))
	}
}

func CountWhere[T any](pred func(T) bool) Reducer[T] {
	return func(records []T) decimal.Decimal {
		n := int64(0)
		for _, r := range records {
			if pred(r) {
				n++
			}
		}
		return decimal.NewFromInt(n)
	}
}

func Sum[T any](value func(T) decimal.Decimal) Reducer[T] {
	return SumWhere(func(T) bool { return true }, value)
}

func SumWhere[T any](pred func(T) bool, value func(T) decimal.Decimal) Reducer[T] {
	return func(records []T) decimal.Decimal {
		total := decimal.Zero
		for _, r := range records {
			if pred(r) {
				total = total.Add(value(r))
			}
		}
		return total
	}
}

// Average is zero for an empty list.
func Average[T any](value func(T) decimal.Decimal) Reducer[T] {
	return func(records []T) decimal.Decimal {
		if len(records) == 0 {
			return decimal.Zero
		}
		return Sum(value)(records).Div(decimal.NewFromInt(int64(len(records))))
	}
}

// Distinct counts distinct non-empty keys.
func Distinct[T any](key func(T) string) Reducer[T] {
	return func(records []T) decimal.Decimal {
		seen := make(map[string]struct{}, len(records))
		for _, r := range records {
			if k := key(r); k != "" {
				seen[k] = struct{}{}
			}
		}
		return decimal.NewFromInt(int64(len(seen)))
	}
}

// Ratio is num/den as a percentage, zero when den is zero.
func Ratio[T any](num, den Reducer[T]) Reducer[T] {
	return func(records []T) decimal.Decimal {
		d := den(records)
		if d.IsZero() {
			return decimal.Zero
		}
		return num(records).Div(d).Mul(decimal.NewFromInt(100))
	}
}

// Int adapts an integer field for the decimal reducers.
func Int[T any](field func(T) int) func(T) decimal.Decimal {
	return func(r T) decimal.Decimal {
		return decimal.NewFromInt(int64(field(r)))
	}
}
