package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "01/02/2006"

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrNoRows        = errors.New("csv has no data rows")
)

var requiredColumns = []string{
	"Indicator", "Group", "State", "Subgroup", "Phase",
	"Time Period", "Time Period Label",
	"Time Period Start Date", "Time Period End Date",
	"Value", "LowCI", "HighCI",
}

// ParseCSV reads the survey table. Columns are matched by header name, so
// extra columns (Confidence Interval, Quartile Range, ...) are ignored.
func ParseCSV(rd io.Reader) ([]Observation, error) {
	r := csv.NewReader(bufio.NewReader(rd))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, ErrNoRows
	}

	col, err := headerIndex(records[0], requiredColumns)
	if err != nil {
		return nil, err
	}

	out := make([]Observation, 0, len(records)-1)
	for rowIdx := 1; rowIdx < len(records); rowIdx++ {
		rec := records[rowIdx]
		get := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		o := Observation{
			Indicator:       get("Indicator"),
			Group:           get("Group"),
			State:           get("State"),
			Subgroup:        get("Subgroup"),
			Phase:           get("Phase"),
			TimePeriodLabel: get("Time Period Label"),
		}
		if o.Indicator == "" {
			return nil, fmt.Errorf("row %d: Indicator is required", rowIdx+1)
		}

		if o.TimePeriodNum, err = parseInt(get("Time Period")); err != nil {
			return nil, fmt.Errorf("row %d: Time Period: %w", rowIdx+1, err)
		}
		if o.TimePeriodStart, err = parseDate(get("Time Period Start Date")); err != nil {
			return nil, fmt.Errorf("row %d: Time Period Start Date: %w", rowIdx+1, err)
		}
		if o.TimePeriodEnd, err = parseDate(get("Time Period End Date")); err != nil {
			return nil, fmt.Errorf("row %d: Time Period End Date: %w", rowIdx+1, err)
		}
		if o.Value, err = parseFloat(get("Value")); err != nil {
			return nil, fmt.Errorf("row %d: Value: %w", rowIdx+1, err)
		}
		if o.LowCI, err = parseFloat(get("LowCI")); err != nil {
			return nil, fmt.Errorf("row %d: LowCI: %w", rowIdx+1, err)
		}
		if o.HighCI, err = parseFloat(get("HighCI")); err != nil {
			return nil, fmt.Errorf("row %d: HighCI: %w", rowIdx+1, err)
		}

		out = append(out, o)
	}

	return out, nil
}

func headerIndex(header, required []string) (map[string]int, error) {
	// Handle BOM on first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, k := range required {
		if _, ok := col[k]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, k)
		}
	}
	return col, nil
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	// Some exports write whole numbers as "1.0".
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// missingTokens are the cell spellings read as "no value", matched case
// insensitively.
var missingTokens = map[string]bool{
	"nan": true, "-nan": true, "na": true, "n/a": true,
	"null": true, "#n/a": true, "none": true,
}

func parseFloat(s string) (*float64, error) {
	if s == "" || missingTokens[strings.ToLower(s)] {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) {
		return nil, nil
	}
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("non-finite value %q", s)
	}
	return &f, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
