package query

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// compare reports whether left operator right holds. A missing (nil) value
// is only equal to another missing value and is never ordered.
func compare(left interface{}, operator Operator, right interface{}) (bool, error) {
	if left == nil || right == nil {
		switch operator {
		case OpEqual:
			return left == right, nil
		case OpNotEqual:
			return left != right, nil
		}
		return false, nil
	}

	sign, err := order(left, right)
	if err != nil {
		return false, err
	}

	switch operator {
	case OpEqual:
		return sign == 0, nil
	case OpNotEqual:
		return sign != 0, nil
	case OpLess:
		return sign < 0, nil
	case OpGreater:
		return sign > 0, nil
	case OpLessEqual:
		return sign <= 0, nil
	case OpGreaterEqual:
		return sign >= 0, nil
	}
	return false, fmt.Errorf("%v is not a comparison operator", operator)
}

// order returns -1, 0 or +1 as left sorts before, with or after right.
// Both values must be numbers, strings or timestamps of the same kind.
func order(left, right interface{}) (int, error) {
	if l, ok := toFloat64(left); ok {
		if r, ok := toFloat64(right); ok {
			return cmp.Compare(l, r), nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return strings.Compare(l, r), nil
		}
	}
	if l, ok := left.(time.Time); ok {
		if r, ok := right.(time.Time); ok {
			return l.Compare(r), nil
		}
	}
	return 0, fmt.Errorf("cannot compare %T with %T", left, right)
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// ApplyFilter returns the rows for which filter evaluates true, in order.
// A nil filter keeps every row.
func ApplyFilter[R Row](rows []R, filter Expression) ([]R, error) {
	if filter == nil {
		return rows, nil
	}

	var kept []R
	for i, row := range rows {
		match, err := filter.Evaluate(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if match {
			kept = append(kept, row)
		}
	}
	return kept, nil
}
