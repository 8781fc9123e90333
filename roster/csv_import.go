package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseRosterCSV reads a header row followed by one wrestler per line. The
// first_name and last_name columns are required; weight_class and sex are
// optional.
func ParseRosterCSV(reader io.Reader) ([]NewWrestler, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv must include a header row and at least one data row")
	}

	headers := make(map[string]int, len(records[0]))
	for idx, col := range records[0] {
		headers[strings.ToLower(strings.TrimSpace(col))] = idx
	}

	for _, col := range []string{"first_name", "last_name"} {
		if _, ok := headers[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	out := make([]NewWrestler, 0, len(records)-1)
	for i, record := range records[1:] {
		lineNo := i + 2

		first := strings.TrimSpace(readValue(record, headers["first_name"]))
		last := strings.TrimSpace(readValue(record, headers["last_name"]))
		if first == "" || last == "" {
			return nil, fmt.Errorf("line %d: first_name and last_name are required", lineNo)
		}

		w := NewWrestler{FirstName: first, LastName: last}

		if idx, ok := headers["weight_class"]; ok {
			value := strings.TrimSpace(readValue(record, idx))
			if value != "" {
				parsed, err := ParseWeightClass(value)
				if err != nil {
					return nil, fmt.Errorf("line %d weight_class: invalid integer %q", lineNo, value)
				}
				w.WeightClass = parsed
			}
		}

		if idx, ok := headers["sex"]; ok {
			if value := strings.TrimSpace(readValue(record, idx)); value != "" {
				w.Sex = &value
			}
		}

		out = append(out, w)
	}

	return out, nil
}

func readValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
