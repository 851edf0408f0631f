package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// RawRow is one line of the source sheet: a mineral, its comma-separated
// producing countries (possibly annotated with parenthetical notes), and
// a free-text uses column.
type RawRow struct {
	Mineral   string
	Countries string
	Uses      string
}

// ReadSourceFile reads the CSV export of the critical-minerals sheet.
// The file must carry a header row; column order is fixed.
func ReadSourceFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing source file: %w", err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("source file %s has no data rows", path)
	}

	rows := make([]RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if len(line) < 3 {
			return nil, fmt.Errorf("source row has %d columns, want 3", len(line))
		}
		rows = append(rows, RawRow{
			Mineral:   strings.TrimSpace(line[0]),
			Countries: line[1],
			Uses:      strings.TrimSpace(line[2]),
		})
	}
	return rows, nil
}

// CleanCountry canonicalizes one country token: parenthetical
// annotations are stripped and whitespace trimmed, so that
// "DRC (largest producer)" and "DRC" group together.
func CleanCountry(token string) string {
	if i := strings.Index(token, "("); i >= 0 {
		token = token[:i]
	}
	return strings.TrimSpace(token)
}

// SplitCountries splits the producing-countries column into canonical
// country names, preserving list order and dropping empty tokens.
func SplitCountries(countries string) []string {
	parts := strings.Split(countries, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := CleanCountry(p); c != "" {
			out = append(out, c)
		}
	}
	return out
}
