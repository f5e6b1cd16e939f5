package query

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoValues is returned by aggregates when every projected value is missing.
var ErrNoValues = errors.New("no values to aggregate")

// Projection extracts one value from a row. A nil result is a missing value.
type Projection func(row Row) interface{}

// Column projects the named column.
func Column(name string) Projection {
	return func(row Row) interface{} {
		v, _ := row.Get(name)
		return v
	}
}

// Count is the number of rows sharing one projected value.
type Count struct {
	Value interface{}
	N     int
}

// ValueCounts returns the frequency distribution of a projection, ordered by
// count descending. Missing values are dropped. Ties are ordered by ascending
// value, so the result is deterministic for any input order.
func ValueCounts[R Row](rows []R, project Projection) []Count {
	index := make(map[string]int)
	counts := make([]Count, 0)

	for _, row := range rows {
		value := project(row)
		if value == nil {
			continue
		}
		key := groupKey(value)
		if i, exists := index[key]; exists {
			counts[i].N++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, Count{Value: value, N: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return less(counts[i].Value, counts[j].Value)
	})

	return counts
}

// Mode returns the most frequent projected value. Ties resolve to the
// smallest value.
func Mode[R Row](rows []R, project Projection) (interface{}, error) {
	counts := ValueCounts(rows, project)
	if len(counts) == 0 {
		return nil, ErrNoValues
	}
	return counts[0].Value, nil
}

// Sum returns the sum of the numeric projected values.
func Sum[R Row](rows []R, project Projection) (float64, error) {
	sum := 0.0
	hasValues := false

	err := eachNumber(rows, project, func(num float64) {
		sum += num
		hasValues = true
	})
	if err != nil {
		return 0, fmt.Errorf("SUM: %w", err)
	}
	if !hasValues {
		return 0, ErrNoValues
	}

	return sum, nil
}

// Mean returns the arithmetic mean of the numeric projected values.
func Mean[R Row](rows []R, project Projection) (float64, error) {
	sum := 0.0
	count := int64(0)

	err := eachNumber(rows, project, func(num float64) {
		sum += num
		count++
	})
	if err != nil {
		return 0, fmt.Errorf("AVG: %w", err)
	}
	if count == 0 {
		return 0, ErrNoValues
	}

	return sum / float64(count), nil
}

// Min returns the smallest numeric projected value.
func Min[R Row](rows []R, project Projection) (float64, error) {
	var min *float64

	err := eachNumber(rows, project, func(num float64) {
		if min == nil || num < *min {
			n := num
			min = &n
		}
	})
	if err != nil {
		return 0, fmt.Errorf("MIN: %w", err)
	}
	if min == nil {
		return 0, ErrNoValues
	}

	return *min, nil
}

// Max returns the largest numeric projected value.
func Max[R Row](rows []R, project Projection) (float64, error) {
	var max *float64

	err := eachNumber(rows, project, func(num float64) {
		if max == nil || num > *max {
			n := num
			max = &n
		}
	})
	if err != nil {
		return 0, fmt.Errorf("MAX: %w", err)
	}
	if max == nil {
		return 0, ErrNoValues
	}

	return *max, nil
}

// eachNumber calls fn for every non-missing projected value. Non-numeric
// values are an error.
func eachNumber[R Row](rows []R, project Projection, fn func(float64)) error {
	for _, row := range rows {
		value := project(row)
		if value == nil {
			continue
		}
		num, ok := toFloat64(value)
		if !ok {
			return fmt.Errorf("cannot aggregate non-numeric value %v (%T)", value, value)
		}
		fn(num)
	}
	return nil
}

// groupKey computes a hash key for a value. %#v keeps int64(1) and "1" apart.
func groupKey(value interface{}) string {
	return fmt.Sprintf("%#v", value)
}

// less orders two values of the same kind; mixed kinds fall back to their
// printed form.
func less(a, b interface{}) bool {
	if sign, err := order(a, b); err == nil {
		return sign < 0
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
