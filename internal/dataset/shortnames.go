package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseShortNames reads the indicator display-name table. The file may be
// comma or tab separated; the delimiter is taken from the header line.
func ParseShortNames(rd io.Reader) (map[string]string, error) {
	br := bufio.NewReader(rd)
	first, err := br.Peek(peekLen(br))
	if err != nil && err != io.EOF {
		return nil, err
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	if line, _, _ := strings.Cut(string(first), "\n"); strings.Contains(line, "\t") {
		r.Comma = '\t'
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, ErrNoRows
	}

	col, err := headerIndex(records[0], []string{"Indicator", "Short Name"})
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(records)-1)
	for rowIdx := 1; rowIdx < len(records); rowIdx++ {
		rec := records[rowIdx]
		if col["Indicator"] >= len(rec) || col["Short Name"] >= len(rec) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", rowIdx+1, len(records[0]), len(rec))
		}
		full := strings.TrimSpace(rec[col["Indicator"]])
		short := strings.TrimSpace(rec[col["Short Name"]])
		if full == "" || short == "" {
			continue
		}
		names[full] = short
	}
	return names, nil
}

// JoinShortNames left-joins display names onto the observations by indicator.
// The input slice is not modified; unmatched rows keep an empty short name.
func JoinShortNames(obs []Observation, names map[string]string) []Observation {
	out := make([]Observation, len(obs))
	for i, o := range obs {
		o.ShortIndicator = names[o.Indicator]
		out[i] = o
	}
	return out
}

func peekLen(br *bufio.Reader) int {
	if n := br.Size(); n < 4096 {
		return n
	}
	return 4096
}
