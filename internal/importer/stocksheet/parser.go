package stocksheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	enc "github.com/stocktrail-app/stocktrail/internal/encoding"
	"github.com/stocktrail-app/stocktrail/internal/party"
)

// Line is one resolved-by-name sheet row. Names are matched against the
// party directory and the item catalog later; the parser only normalizes.
type Line struct {
	Kind         party.Kind
	LocationName string
	ItemName     string
	Quantity     int64
}

// Parser reads opening-stock CSV sheets. It auto-detects which sheet
// format is in use by matching column headers against known profiles,
// so depots can hand in their existing spreadsheets unmodified.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Line, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = sniffDelimiter(string(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching sheet format found: expected standard or legacy columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// sniffDelimiter picks the delimiter by counting candidates in the first
// non-empty line. Sheets come out of spreadsheet tools with either.
func sniffDelimiter(content string) rune {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.Count(line, ";") > strings.Count(line, ",") {
			return ';'
		}

		return ','
	}

	return ','
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts lines from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]Line, error) {
	kindIdx := cols[p.KindCol]
	locIdx := cols[p.LocationCol]
	itemIdx := cols[p.ItemCol]
	qtyIdx := cols[p.QuantityCol]

	var lines []Line

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		kindStr := cellValue(row, kindIdx)
		locName := cellValue(row, locIdx)
		itemName := cellValue(row, itemIdx)
		qtyStr := cellValue(row, qtyIdx)

		// Blank and footer rows (page markers, totals) are skipped, not errors.
		if locName == "" && itemName == "" {
			continue
		}

		kind, ok := parseKind(kindStr)
		if !ok {
			return nil, fmt.Errorf("row %d: unknown location type %q", rowNum, kindStr)
		}

		if locName == "" {
			return nil, fmt.Errorf("row %d: missing location", rowNum)
		}

		if itemName == "" {
			return nil, fmt.Errorf("row %d: missing item", rowNum)
		}

		qty, err := parseQuantity(qtyStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity %q: %w", rowNum, qtyStr, err)
		}

		if qty <= 0 {
			return nil, fmt.Errorf("row %d: quantity must be positive", rowNum)
		}

		lines = append(lines, Line{
			Kind:         kind,
			LocationName: locName,
			ItemName:     itemName,
			Quantity:     qty,
		})
	}

	return lines, nil
}

func parseKind(s string) (party.Kind, bool) {
	switch strings.ToLower(s) {
	case "warehouse", "almacén", "almacen":
		return party.KindWarehouse, true
	case "equipment", "equipo":
		return party.KindEquipment, true
	}

	return "", false
}

// parseQuantity accepts plain integers with optional thousand separators
// ("1200", "1.200", "1,200"). Fractional quantities are rejected.
func parseQuantity(s string) (int64, error) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty")
	}

	for _, sep := range []string{".", ","} {
		if !strings.Contains(s, sep) {
			continue
		}

		groups := strings.Split(s, sep)
		for i, g := range groups {
			if i > 0 && len(g) != 3 {
				return 0, fmt.Errorf("not a whole number")
			}
		}

		s = strings.Join(groups, "")
	}

	return strconv.ParseInt(s, 10, 64)
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
