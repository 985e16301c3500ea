package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOptions controls CSV parsing. A zero Delimiter auto-detects among
// ',', ';' and '\t' from the header line.
type LoadOptions struct {
	Delimiter rune
}

// Load reads a CSV file into a Dataset. A column is numeric when every
// non-missing cell parses as an integer or float; otherwise it is
// categorical. Empty cells are missing. Rows shorter than the header are
// padded with missing cells.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	delim := opts.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}

	r := csv.NewReader(bufio.NewReader(f))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	headers, err := r.Read()
	if err == io.EOF {
		return &Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", path, err)
	}

	ncol := len(headers)
	raw := make([][]string, ncol)
	present := make([][]bool, ncol)
	nrows := 0

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV %s (row %d): %w", path, nrows+1, err)
		}
		for j := 0; j < ncol; j++ {
			var v string
			if j < len(rec) {
				v = strings.TrimSpace(rec[j])
			}
			raw[j] = append(raw[j], v)
			present[j] = append(present[j], v != "")
		}
		nrows++
	}

	ds := &Dataset{NRows: nrows, Columns: make([]Column, 0, ncol)}
	for j := 0; j < ncol; j++ {
		ds.Columns = append(ds.Columns, buildColumn(strings.TrimSpace(headers[j]), raw[j], present[j]))
	}
	return ds, nil
}

// buildColumn infers the column kind from its cells and converts them.
// All-missing columns come out numeric, matching how dataframe loaders type
// fully empty columns.
func buildColumn(name string, raw []string, present []bool) Column {
	numeric := true
	for i, p := range present {
		if p && !isInt(raw[i]) && !isFloat(raw[i]) {
			numeric = false
			break
		}
	}
	if !numeric {
		return NewCategoricalColumn(name, raw, present)
	}
	numbers := make([]float64, len(raw))
	for i, p := range present {
		if !p {
			continue
		}
		x, err := strconv.ParseFloat(raw[i], 64)
		if err != nil {
			// Scanner accepted it, ParseFloat should too.
			present[i] = false
			continue
		}
		numbers[i] = x
	}
	return NewNumericColumn(name, numbers, present)
}

// sniffDelimiter inspects the first line and picks the candidate separator
// occurring most often. Defaults to ',' when none appears.
func sniffDelimiter(path string) rune {
	f, err := os.Open(path)
	if err != nil {
		return ','
	}
	defer f.Close()

	line, _ := bufio.NewReader(f).ReadString('\n')
	best, bestCount := ',', strings.Count(line, ",")
	for _, cand := range []rune{';', '\t'} {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}
	return best
}

// isInt quickly checks whether a string is an optionally signed integer.
func isInt(s string) bool {
	if len(s) == 0 || len(s) >= 20 {
		return false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		i = 1
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isFloat quickly checks whether a string is a decimal or scientific float.
func isFloat(s string) bool {
	if len(s) == 0 || len(s) >= 25 {
		return false
	}
	hasDot := false
	hasExp := false
	hasDigit := false
	i := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		i = 1
	}
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '.':
			if hasDot || hasExp {
				return false
			}
			hasDot = true
		case c == 'e' || c == 'E':
			if hasExp || !hasDigit || i == len(s)-1 {
				return false
			}
			hasExp = true
			// allow a sign right after the exponent
			if s[i+1] == '-' || s[i+1] == '+' {
				i++
				if i == len(s)-1 {
					return false
				}
			}
		default:
			return false
		}
	}
	return hasDigit && (hasDot || hasExp)
}
