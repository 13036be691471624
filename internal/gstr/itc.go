package gstr

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"kaagaz/internal/domain"
)

// ITCSupplierRow is one supplier's aggregated input-tax credit from an
// uploaded GSTR-2B workbook. Rows live only in memory; a new upload or a
// new period discards them.
type ITCSupplierRow struct {
	GSTIN     string  `json:"gstin"`
	Name      string  `json:"name"`
	IAmt      float64 `json:"iamt"`
	CAmt      float64 `json:"camt"`
	SAmt      float64 `json:"samt"`
	TotalITC  float64 `json:"total_itc"`
	IsClaimed bool    `json:"is_claimed"`
}

// ITCColumns holds resolved column indexes in the b2b sheet. A negative
// index means the column was not found and its values contribute zero.
type ITCColumns struct {
	GSTIN int
	Name  int
	IGST  int
	CGST  int
	SGST  int
}

// ColumnResolver locates the header row of a b2b sheet. Implementations
// return ok=false for rows that are not the header. The default resolver
// matches by substring to tolerate drift across official template
// revisions; validated sources can swap in a strict schema.
type ColumnResolver interface {
	Resolve(row []string) (ITCColumns, bool)
}

// FuzzyColumnResolver matches header cells by case-insensitive substrings.
type FuzzyColumnResolver struct{}

// Resolve treats a row as the header when some cell mentions both "gstin"
// and "supplier", then picks the first cell matching each tax column.
func (FuzzyColumnResolver) Resolve(row []string) (ITCColumns, bool) {
	lower := make([]string, len(row))
	for i, cell := range row {
		lower[i] = strings.ToLower(cell)
	}

	cols := ITCColumns{
		GSTIN: findCell(lower, func(c string) bool {
			return strings.Contains(c, "gstin") && strings.Contains(c, "supplier")
		}),
		Name: findCell(lower, func(c string) bool {
			return strings.Contains(c, "trade") || strings.Contains(c, "name")
		}),
		IGST: findCell(lower, func(c string) bool {
			return strings.Contains(c, "integrated") || strings.Contains(c, "igst")
		}),
		CGST: findCell(lower, func(c string) bool {
			return strings.Contains(c, "central") || strings.Contains(c, "cgst")
		}),
		SGST: findCell(lower, func(c string) bool {
			return strings.Contains(c, "state/ut") || strings.Contains(c, "sgst")
		}),
	}
	return cols, cols.GSTIN >= 0
}

func findCell(row []string, match func(string) bool) int {
	for i, cell := range row {
		if match(cell) {
			return i
		}
	}
	return -1
}

// ParseITCWorkbook reads an uploaded GSTR-2B workbook and aggregates
// input-tax credit per supplier GSTIN using the default fuzzy resolver.
func ParseITCWorkbook(r io.Reader) ([]ITCSupplierRow, error) {
	return ParseITCWorkbookWith(r, FuzzyColumnResolver{})
}

// ParseITCWorkbookWith parses the workbook with a caller-supplied column
// resolver. It fails whole with domain.ErrSheetNotFound when no sheet name
// contains "b2b" (any case), and domain.ErrHeaderNotFound when the
// resolver accepts no row of that sheet. Data rows are included only when
// the GSTIN cell is exactly 15 characters; non-numeric tax cells count as
// zero. Suppliers come out in first-occurrence order, all claimed.
func ParseITCWorkbookWith(r io.Reader, resolver ColumnResolver) ([]ITCSupplierRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := ""
	for _, name := range f.GetSheetList() {
		if strings.Contains(strings.ToLower(name), "b2b") {
			sheet = name
			break
		}
	}
	if sheet == "" {
		return nil, domain.ErrSheetNotFound
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	headerIdx := -1
	var cols ITCColumns
	for i, row := range rows {
		if c, ok := resolver.Resolve(row); ok {
			headerIdx, cols = i, c
			break
		}
	}
	if headerIdx < 0 {
		return nil, domain.ErrHeaderNotFound
	}

	suppliers := make([]ITCSupplierRow, 0)
	index := make(map[string]int)
	for _, row := range rows[headerIdx+1:] {
		gstin := cell(row, cols.GSTIN)
		if len(gstin) != domain.GSTINLength {
			continue
		}

		i, ok := index[gstin]
		if !ok {
			i = len(suppliers)
			index[gstin] = i
			name := cell(row, cols.Name)
			if name == "" {
				name = "N/A"
			}
			suppliers = append(suppliers, ITCSupplierRow{GSTIN: gstin, Name: name, IsClaimed: true})
		}

		suppliers[i].IAmt += cellValue(row, cols.IGST)
		suppliers[i].CAmt += cellValue(row, cols.CGST)
		suppliers[i].SAmt += cellValue(row, cols.SGST)
	}

	for i := range suppliers {
		suppliers[i].TotalITC = suppliers[i].IAmt + suppliers[i].CAmt + suppliers[i].SAmt
	}
	return suppliers, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// cellValue parses a numeric cell, tolerating thousands separators and
// blanks. Official templates vary in blank-cell representation, so
// anything unparseable contributes zero instead of erroring.
func cellValue(row []string, idx int) float64 {
	s := strings.ReplaceAll(cell(row, idx), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ToggleClaim returns a copy of rows with the claim flag flipped for the
// matching supplier. The input is never mutated.
func ToggleClaim(rows []ITCSupplierRow, gstin string) []ITCSupplierRow {
	out := make([]ITCSupplierRow, len(rows))
	copy(out, rows)
	for i := range out {
		if out[i].GSTIN == gstin {
			out[i].IsClaimed = !out[i].IsClaimed
		}
	}
	return out
}

// TotalClaimed sums TotalITC over the claimed rows.
func TotalClaimed(rows []ITCSupplierRow) float64 {
	var total float64
	for _, row := range rows {
		if row.IsClaimed {
			total += row.TotalITC
		}
	}
	return total
}
