package steps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// cellValue returns the value of the named column in row, or "" if absent
func cellValue(table *godog.Table, row *messages.PickleTableRow, column string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, cell := range table.Rows[0].Cells {
		if cell.Value == column && i < len(row.Cells) {
			return row.Cells[i].Value
		}
	}
	return ""
}

func cellInt64(table *godog.Table, row *messages.PickleTableRow, column string) (int64, error) {
	raw := cellValue(table, row, column)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return v, nil
}

func cellFloat(table *godog.Table, row *messages.PickleTableRow, column string) (float64, error) {
	raw := cellValue(table, row, column)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return v, nil
}

// dataRows skips the header row
func dataRows(table *godog.Table) []*messages.PickleTableRow {
	if len(table.Rows) < 2 {
		return nil
	}
	return table.Rows[1:]
}

func containsText(s, fragment string) bool {
	return strings.Contains(s, fragment)
}
