package warehouse

import "context"

// DefaultRowCap bounds how many rows a single query may return.
const DefaultRowCap = 500

// Result is a bounded, column-ordered view of the rows a query produced.
// Column order is carried explicitly because JSON objects do not preserve
// key order.
type Result struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// Query executes sqlText as-is and returns at most rowCap rows. The
// statement has already been classified safe upstream; no re-validation
// happens here. Every failure comes back as an error value and never
// propagates further than this boundary.
func (p *Pool) Query(ctx context.Context, sqlText string, rowCap int) (*Result, error) {
	if rowCap <= 0 {
		rowCap = DefaultRowCap
	}

	rows, err := p.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Result{Columns: columns, Rows: []map[string]any{}}
	for len(result.Rows) < rowCap && rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			// Drivers hand back []byte for text columns; stringify so the
			// rows render cleanly as JSON.
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
