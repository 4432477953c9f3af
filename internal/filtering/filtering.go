// Package filtering applies property based predicates to card stacks.
package filtering

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/konstantinfoerster/card-stacks-go/internal/cards"
	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
)

type Operator string

const (
	OpEquals       Operator = "eq"
	OpNotEquals    Operator = "ne"
	OpContains     Operator = "contains"
	OpGreaterThan  Operator = "gt"
	OpLessThan     Operator = "lt"
	OpGreaterEqual Operator = "gte"
	OpLessEqual    Operator = "lte"
	OpIn           Operator = "in"
	OpNotIn        Operator = "not_in"
)

var operators = []Operator{
	OpEquals, OpNotEquals, OpContains, OpGreaterThan, OpLessThan,
	OpGreaterEqual, OpLessEqual, OpIn, OpNotIn,
}

func ParseOperator(s string) (Operator, error) {
	op := Operator(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range operators {
		if op == known {
			return op, nil
		}
	}

	return "", fmt.Errorf("unknown filter operator %q", s)
}

// PropertyFilter checks one named card property against a value. A filter
// never fails, a missing property or an incomparable operand simply does
// not match.
type PropertyFilter struct {
	Property string
	Operator Operator
	Value    any
}

func (f PropertyFilter) Apply(c cards.Card) bool {
	v, ok := c.Property(f.Property)
	if !ok {
		return false
	}

	switch f.Operator {
	case OpEquals:
		return looseEq(v, f.Value)
	case OpNotEquals:
		return !looseEq(v, f.Value)
	case OpContains:
		if v == nil || f.Value == nil {
			return false
		}

		return strings.Contains(
			strings.ToLower(fmt.Sprint(v)),
			strings.ToLower(fmt.Sprint(f.Value)),
		)
	case OpGreaterThan:
		cmp, ok := compare(v, f.Value)

		return ok && cmp > 0
	case OpLessThan:
		cmp, ok := compare(v, f.Value)

		return ok && cmp < 0
	case OpGreaterEqual:
		cmp, ok := compare(v, f.Value)

		return ok && cmp >= 0
	case OpLessEqual:
		cmp, ok := compare(v, f.Value)

		return ok && cmp <= 0
	case OpIn:
		return inSet(v, f.Value)
	case OpNotIn:
		return !inSet(v, f.Value)
	default:
		return false
	}
}

// Filter returns a new stack containing every copy that passes all given
// filters.
func Filter(s *stacks.Stack, filters ...PropertyFilter) *stacks.Stack {
	result := stacks.New()
	for _, c := range s.Cards() {
		if passesAll(c, filters) {
			result.Add(c)
		}
	}

	return result
}

func passesAll(c cards.Card, filters []PropertyFilter) bool {
	for _, f := range filters {
		if !f.Apply(c) {
			return false
		}
	}

	return true
}

func looseEq(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}

	return reflect.DeepEqual(a, b)
}

// compare orders two values when both are numeric or both are strings.
// Everything else, including nil on either side, is incomparable.
func compare(a, b any) (int, bool) {
	fa, aok := toFloat(a)
	fb, bok := toFloat(b)
	if aok && bok {
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		default:
			return 0, true
		}
	}

	sa, aok := a.(string)
	sb, bok := b.(string)
	if aok && bok {
		return strings.Compare(sa, sb), true
	}

	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func inSet(v, set any) bool {
	if set == nil {
		return false
	}

	rv := reflect.ValueOf(set)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if looseEq(v, rv.Index(i).Interface()) {
			return true
		}
	}

	return false
}
