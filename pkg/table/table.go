// Package table models the client-side table widget: declarative
// columns, local sort and selection state, and the per-row delete
// confirmation flow. None of this state affects server requests.
package table

import (
	"sort"
)

// Column declares one displayed field of a row.
type Column[T any] struct {
	Title    string
	Sortable bool
	Value    func(row T) string
}

// Model holds the rows and the purely client-local sort/selection
// state. Selection is keyed by the row's load order, so sorting never
// changes what is selected.
type Model[T any] struct {
	columns  []Column[T]
	rows     []T
	sortCol  int
	sortAsc  bool
	selected map[int]bool
}

func NewModel[T any](columns []Column[T], rows []T) *Model[T] {
	return &Model[T]{
		columns:  columns,
		rows:     rows,
		sortCol:  -1,
		selected: map[int]bool{},
	}
}

func (m *Model[T]) Columns() []Column[T] { return m.columns }

// ToggleSort activates sorting on col, flipping direction when the
// column is already active. Non-sortable columns are ignored.
func (m *Model[T]) ToggleSort(col int) {
	if col < 0 || col >= len(m.columns) || !m.columns[col].Sortable {
		return
	}
	if m.sortCol == col {
		m.sortAsc = !m.sortAsc
		return
	}
	m.sortCol = col
	m.sortAsc = true
}

// ViewRows returns the rows in display order.
func (m *Model[T]) ViewRows() []T {
	view := make([]T, len(m.rows))
	copy(view, m.rows)
	if m.sortCol < 0 {
		return view
	}

	value := m.columns[m.sortCol].Value
	sort.SliceStable(view, func(i, j int) bool {
		if m.sortAsc {
			return value(view[i]) < value(view[j])
		}
		return value(view[j]) < value(view[i])
	})
	return view
}

// ToggleSelect flips selection of the row at load index i.
func (m *Model[T]) ToggleSelect(i int) {
	if i < 0 || i >= len(m.rows) {
		return
	}
	if m.selected[i] {
		delete(m.selected, i)
		return
	}
	m.selected[i] = true
}

// ToggleSelectAll selects every row, or clears the selection when
// everything is already selected.
func (m *Model[T]) ToggleSelectAll() {
	if m.AllSelected() {
		m.selected = map[int]bool{}
		return
	}
	for i := range m.rows {
		m.selected[i] = true
	}
}

func (m *Model[T]) AllSelected() bool {
	return len(m.rows) > 0 && len(m.selected) == len(m.rows)
}

func (m *Model[T]) Selected(i int) bool { return m.selected[i] }

// SelectedRows returns the selected rows in load order.
func (m *Model[T]) SelectedRows() []T {
	out := []T{}
	for i, row := range m.rows {
		if m.selected[i] {
			out = append(out, row)
		}
	}
	return out
}
