package domain

// Table is a query result rendered as text, one string per column.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}
