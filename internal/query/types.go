// Package query provides row predicates and aggregation primitives over
// tabular trip data.
//
// Rows are addressed by column name through the Row interface, so the same
// predicates and value counts work for source columns ("Start Station") and
// for columns derived from the start time ("Month Number", "Weekday Name").
//
// Example usage:
//
//	march := &ComparisonExpr{Column: "Month Number", Operator: OpEqual, Value: int64(3)}
//	filtered, err := ApplyFilter(rows, march)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	counts := ValueCounts(filtered, Column("Start Station"))
package query

// Operator is a comparison or boolean operator.
type Operator int

const (
	// Comparison
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual

	// Boolean
	OpAnd
	OpOr
)

// String returns the operator symbol.
func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEqual:
		return "<="
	case OpGreaterEqual:
		return ">="
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return "?"
	}
}

// Row is a record whose values can be looked up by column name.
//
// Get reports false for unknown columns. A known column with a missing value
// returns (nil, true).
type Row interface {
	Get(column string) (interface{}, bool)
}

// Expression represents a boolean expression evaluated against a row
type Expression interface {
	Evaluate(row Row) (bool, error)
}

// BinaryExpr represents a binary expression (AND/OR)
type BinaryExpr struct {
	Left     Expression
	Operator Operator // OpAnd or OpOr
	Right    Expression
}

// ComparisonExpr represents a comparison expression
type ComparisonExpr struct {
	Column   string
	Operator Operator
	Value    interface{}
}

// Evaluate evaluates a binary expression
func (b *BinaryExpr) Evaluate(row Row) (bool, error) {
	left, err := b.Left.Evaluate(row)
	if err != nil {
		return false, err
	}

	// Short-circuit so chained filters skip work on rejected rows
	if b.Operator == OpAnd && !left {
		return false, nil
	}
	if b.Operator == OpOr && left {
		return true, nil
	}

	right, err := b.Right.Evaluate(row)
	if err != nil {
		return false, err
	}

	switch b.Operator {
	case OpAnd:
		return left && right, nil
	case OpOr:
		return left || right, nil
	default:
		return false, nil
	}
}

// Evaluate evaluates a comparison expression
func (c *ComparisonExpr) Evaluate(row Row) (bool, error) {
	value, exists := row.Get(c.Column)
	if !exists {
		return false, nil
	}

	return compare(value, c.Operator, c.Value)
}

// And joins the non-nil expressions with AND. It returns nil when no
// expression is given, meaning no restriction.
func And(exprs ...Expression) Expression {
	var result Expression
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if result == nil {
			result = e
			continue
		}
		result = &BinaryExpr{Left: result, Operator: OpAnd, Right: e}
	}
	return result
}
