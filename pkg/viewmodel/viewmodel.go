package viewmodel

import "github.com/goliatone/go-formbind/pkg/model"

// ViewModel is an ordered snapshot of rows. It does not track later model
// changes; generate a new one instead.
type ViewModel struct {
	rows []Row
}

// Len reports the number of rows.
func (vm ViewModel) Len() int {
	return len(vm.rows)
}

// At returns a copy of the row at index i. It panics when i is out of range,
// like a slice index.
func (vm ViewModel) At(i int) Row {
	return vm.rows[i].clone()
}

// Rows returns copies of the rows. Options and metadata are copied too, so
// callers cannot alter the snapshot.
func (vm ViewModel) Rows() []Row {
	out := make([]Row, len(vm.rows))
	for i, row := range vm.rows {
		out[i] = row.clone()
	}
	return out
}

// Row looks a row up by field key.
func (vm ViewModel) Row(key model.Key) (Row, bool) {
	for _, row := range vm.rows {
		if row.ID == key {
			return row.clone(), true
		}
	}
	return Row{}, false
}

// Valid reports whether every row carries a valid result.
func (vm ViewModel) Valid() bool {
	for _, row := range vm.rows {
		if !row.Validation().IsValid() {
			return false
		}
	}
	return true
}

// Reasons collects the reasons of every invalid row, suffixed with the row
// label, in row order.
func (vm ViewModel) Reasons() []string {
	var out []string
	for _, row := range vm.rows {
		out = append(out, row.Validation().Suffixed(row.Label()).Reasons()...)
	}
	return out
}

// Filter returns a view-model holding only the rows keep accepts, in order.
func (vm ViewModel) Filter(keep func(Row) bool) ViewModel {
	if keep == nil {
		return vm
	}
	rows := make([]Row, 0, len(vm.rows))
	for _, row := range vm.rows {
		if keep(row.clone()) {
			rows = append(rows, row)
		}
	}
	return ViewModel{rows: rows}
}
