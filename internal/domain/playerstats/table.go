package playerstats

import "github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"

// scalarColumn holds list items that are not mappings.
const scalarColumn = "value"

// tableOf builds a table from a list of records. Columns are the union of
// record keys in natural order.
func tableOf(title string, items []jsontree.Node) Table {
	seen := make(map[string]struct{})
	columns := make([]string, 0)
	rows := make([]map[string]any, 0, len(items))

	for _, item := range items {
		row := make(map[string]any)
		if item.IsObject() {
			for _, key := range item.Keys() {
				row[key] = item.Get(key).Raw()
				if _, ok := seen[key]; !ok {
					seen[key] = struct{}{}
					columns = append(columns, key)
				}
			}
		} else {
			row[scalarColumn] = item.Raw()
			if _, ok := seen[scalarColumn]; !ok {
				seen[scalarColumn] = struct{}{}
				columns = append(columns, scalarColumn)
			}
		}
		rows = append(rows, row)
	}

	jsontree.SortNatural(columns)
	for _, row := range rows {
		for _, column := range columns {
			if _, ok := row[column]; !ok {
				row[column] = nil
			}
		}
	}
	return Table{Title: title, Columns: columns, Rows: rows}
}

// project keeps only the given columns, in that order.
func (t Table) project(columns []string) Table {
	rows := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		projected := make(map[string]any, len(columns))
		for _, column := range columns {
			projected[column] = row[column]
		}
		rows = append(rows, projected)
	}
	return Table{Title: t.Title, Columns: columns, Rows: rows}
}
