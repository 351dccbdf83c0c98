package extract

// Row is one table row. Cell 0 is the field key, cell 1 its value, and
// an optional cell 2 a human-readable description. Cell order maps to
// table columns.
type Row []any

// Key returns the row's field key.
func (r Row) Key() string {
	if len(r) == 0 {
		return ""
	}
	k, _ := r[0].(string)
	return k
}

// RowSet is an ordered sequence of rows belonging to one category.
type RowSet []Row

// Cells converts the set to plain rows for table construction.
func (rs RowSet) Cells() [][]any {
	out := make([][]any, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}

// AppendOutputDescriptions joins rows with a label registry. Rows whose
// key has a registry entry come back as (key, value, description);
// unlabeled rows are dropped, not passed through.
func AppendOutputDescriptions(rows RowSet, registry map[string]string) RowSet {
	out := make(RowSet, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		label, ok := registry[row.Key()]
		if !ok {
			continue
		}
		out = append(out, Row{row[0], row[1], label})
	}
	return out
}

// FilterOutParameters returns rows with every row keyed by any of the
// given keys removed. The input set is left untouched.
func FilterOutParameters(rows RowSet, keys ...string) RowSet {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	out := make(RowSet, 0, len(rows))
	for _, row := range rows {
		if drop[row.Key()] {
			continue
		}
		out = append(out, row)
	}
	return out
}
