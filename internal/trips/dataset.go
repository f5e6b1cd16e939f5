package trips

// Dataset is every trip of one city, in file order.
type Dataset struct {
	City    string
	columns []string
	trips   []Trip
}

// NewDataset creates a dataset. columns lists the source columns present in
// the city file, in file order, excluding the index column.
func NewDataset(city string, columns []string, trips []Trip) *Dataset {
	return &Dataset{
		City:    city,
		columns: append([]string(nil), columns...),
		trips:   trips,
	}
}

// Len returns the number of trips.
func (d *Dataset) Len() int {
	return len(d.trips)
}

// Trips returns the trips. Callers must not modify the returned slice.
func (d *Dataset) Trips() []Trip {
	return d.trips
}

// SourceColumns returns the source columns present in the city file.
func (d *Dataset) SourceColumns() []string {
	return append([]string(nil), d.columns...)
}

// HasColumn reports whether the city file provides the named column.
// Derived columns are always available.
func (d *Dataset) HasColumn(name string) bool {
	switch name {
	case ColumnMonth, ColumnWeekday, ColumnStartHour:
		return true
	}
	for _, c := range d.columns {
		if c == name {
			return true
		}
	}
	return false
}

// All returns a view over every trip.
func (d *Dataset) All() *View {
	return &View{source: d, trips: d.trips}
}

// Restrict returns a view over the given subset of this dataset's trips.
func (d *Dataset) Restrict(subset []Trip) *View {
	return &View{source: d, trips: subset}
}

// View is a dataset restricted to the trips matching a filter.
type View struct {
	source *Dataset
	trips  []Trip
}

// Len returns the number of trips in the view.
func (v *View) Len() int {
	return len(v.trips)
}

// Empty reports whether the view has no trips.
func (v *View) Empty() bool {
	return len(v.trips) == 0
}

// Trips returns the trips of the view. Callers must not modify the slice.
func (v *View) Trips() []Trip {
	return v.trips
}

// Source returns the dataset the view was taken from.
func (v *View) Source() *Dataset {
	return v.source
}

// HasColumn reports whether the underlying city file provides the column.
func (v *View) HasColumn(name string) bool {
	return v.source.HasColumn(name)
}

// Columns returns the display columns: the source columns followed by the
// derived month number and weekday name.
func (v *View) Columns() []string {
	cols := v.source.SourceColumns()
	return append(cols, ColumnMonth, ColumnWeekday)
}

// Window returns up to n trips starting at offset. Out of range offsets
// yield an empty slice.
func (v *View) Window(offset, n int) []Trip {
	if offset < 0 || offset >= len(v.trips) || n <= 0 {
		return nil
	}
	end := offset + n
	if end > len(v.trips) {
		end = len(v.trips)
	}
	return v.trips[offset:end]
}

// Records renders the trips in [offset, offset+n) as display rows. The first
// cell of each row is the trip's source index, followed by Columns().
func (v *View) Records(offset, n int) [][]string {
	cols := v.Columns()
	window := v.Window(offset, n)
	records := make([][]string, 0, len(window))
	for _, t := range window {
		record := make([]string, 0, len(cols)+1)
		record = append(record, t.ID)
		for _, c := range cols {
			record = append(record, t.Field(c))
		}
		records = append(records, record)
	}
	return records
}
