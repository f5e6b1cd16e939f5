package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueCounts(t *testing.T) {
	tests := []struct {
		name   string
		rows   []mapRow
		column string
		want   []Count
	}{
		{
			name: "descending by count",
			rows: []mapRow{
				{"User Type": "Customer"},
				{"User Type": "Subscriber"},
				{"User Type": "Subscriber"},
			},
			column: "User Type",
			want:   []Count{{"Subscriber", 2}, {"Customer", 1}},
		},
		{
			name: "missing values dropped",
			rows: []mapRow{
				{"Gender": "Female"},
				{"Gender": nil},
				{},
			},
			column: "Gender",
			want:   []Count{{"Female", 1}},
		},
		{
			name: "string ties ordered by value",
			rows: []mapRow{
				{"Start Station": "Wood St"},
				{"Start Station": "Ada St"},
				{"Start Station": "Michigan Ave"},
			},
			column: "Start Station",
			want:   []Count{{"Ada St", 1}, {"Michigan Ave", 1}, {"Wood St", 1}},
		},
		{
			name: "numeric ties ordered numerically",
			rows: []mapRow{
				{"Start Hour": int64(17)},
				{"Start Hour": int64(8)},
				{"Start Hour": int64(17)},
				{"Start Hour": int64(8)},
				{"Start Hour": int64(9)},
			},
			column: "Start Hour",
			want:   []Count{{int64(8), 2}, {int64(17), 2}, {int64(9), 1}},
		},
		{
			name:   "empty input",
			rows:   nil,
			column: "Gender",
			want:   []Count{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueCounts(tt.rows, Column(tt.column))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ValueCounts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValueCounts_OrderIndependent(t *testing.T) {
	a := []mapRow{{"v": "x"}, {"v": "y"}, {"v": "z"}, {"v": "y"}, {"v": "x"}}
	b := []mapRow{{"v": "y"}, {"v": "x"}, {"v": "z"}, {"v": "x"}, {"v": "y"}}

	if diff := cmp.Diff(ValueCounts(a, Column("v")), ValueCounts(b, Column("v"))); diff != "" {
		t.Errorf("ValueCounts depends on input order (-a +b):\n%s", diff)
	}
}

func TestMode(t *testing.T) {
	rows := []mapRow{{"s": "B"}, {"s": "A"}, {"s": "B"}}
	got, err := Mode(rows, Column("s"))
	if err != nil {
		t.Fatalf("Mode() error = %v", err)
	}
	if got != "B" {
		t.Errorf("Mode() = %v, want B", got)
	}

	if _, err := Mode([]mapRow{{"s": nil}}, Column("s")); !errors.Is(err, ErrNoValues) {
		t.Errorf("Mode() of missing values error = %v, want ErrNoValues", err)
	}
}

func TestMode_CustomProjection(t *testing.T) {
	rows := []mapRow{
		{"from": "A", "to": "B"},
		{"from": "A", "to": "C"},
		{"from": "A", "to": "B"},
	}
	journey := func(row Row) interface{} {
		from, _ := row.Get("from")
		to, _ := row.Get("to")
		return from.(string) + " to " + to.(string)
	}

	got, err := Mode(rows, journey)
	if err != nil {
		t.Fatalf("Mode() error = %v", err)
	}
	if got != "A to B" {
		t.Errorf("Mode() = %v, want %q", got, "A to B")
	}
	if _, ok := rows[0]["journey"]; ok {
		t.Error("projection must not add columns to the row")
	}
}

func TestNumericAggregates(t *testing.T) {
	rows := []mapRow{
		{"Birth Year": 1985.0},
		{"Birth Year": nil},
		{"Birth Year": 1960.0},
		{"Birth Year": int64(2001)},
	}
	col := Column("Birth Year")

	tests := []struct {
		name string
		fn   func([]mapRow, Projection) (float64, error)
		want float64
	}{
		{"sum", Sum[mapRow], 5946},
		{"mean", Mean[mapRow], 1982},
		{"min", Min[mapRow], 1960},
		{"max", Max[mapRow], 2001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(rows, col)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumericAggregates_Errors(t *testing.T) {
	empty := []mapRow{{"d": nil}}
	for _, fn := range []func([]mapRow, Projection) (float64, error){Sum[mapRow], Mean[mapRow], Min[mapRow], Max[mapRow]} {
		if _, err := fn(empty, Column("d")); !errors.Is(err, ErrNoValues) {
			t.Errorf("aggregate of missing values error = %v, want ErrNoValues", err)
		}
	}

	text := []mapRow{{"d": "sixty"}}
	if _, err := Sum(text, Column("d")); err == nil || errors.Is(err, ErrNoValues) {
		t.Errorf("Sum() of text error = %v, want conversion error", err)
	}
}
