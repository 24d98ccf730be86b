// Package sales holds the canonical sales record table and the group-by
// aggregates derived from it.
package sales

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vinodismyname/salesreport/config"
	"github.com/vinodismyname/salesreport/internal/workbooks"
	"github.com/vinodismyname/salesreport/pkg/apperr"
	"github.com/vinodismyname/salesreport/pkg/validation"
)

// Canonical column names, in source order.
const (
	ColStoreID   = "ID_LOJA"
	ColCity      = "CIDADE"
	ColMonthYear = "MES_ANO"
	ColProduct   = "PRODUTO"
	ColQuantity  = "QTDE_VENDAS"
	ColValue     = "VALOR"
)

// CanonicalColumns is the fixed schema applied positionally after loading.
var CanonicalColumns = [config.CanonicalColumnCount]string{
	ColStoreID, ColCity, ColMonthYear, ColProduct, ColQuantity, ColValue,
}

var (
	// ErrColumnCount indicates the sheet header does not have the canonical column count.
	ErrColumnCount = errors.New("sales: unexpected column count")
	// ErrParse indicates a cell could not be converted to its column type.
	ErrParse = errors.New("sales: parse failed")
	// ErrMonthsNotParsed indicates a month aggregate was requested before ParseMonths.
	ErrMonthsNotParsed = errors.New("sales: month-year column not parsed")
)

// Record is one sale.
type Record struct {
	Row       int
	StoreID   string
	City      string
	MonthYear string
	Month     time.Time // zero until ParseMonths
	Product   string
	Quantity  float64 // NaN when the cell is blank or not a number
	Value     decimal.Decimal
}

// Table is the sales record table with its canonical column names.
type Table struct {
	Columns      [config.CanonicalColumnCount]string
	Source       []string // header as found in the sheet
	Records      []Record
	monthsParsed bool
}

type header struct {
	Columns []string `validate:"len=6"`
}

// Normalize maps the sheet's columns positionally onto the canonical schema
// and converts quantity and value cells. Only the value column can fail a row. The sheet header must have exactly
// six columns; their names are otherwise ignored.
func Normalize(sh *workbooks.Sheet) (*Table, error) {
	if sh == nil {
		return nil, apperr.Wrapf(apperr.Internal, "sales: nil sheet")
	}
	if msg := validation.ValidateStruct(header{Columns: sh.Header}); msg != "" {
		return nil, apperr.Wrap(apperr.SchemaMismatch, fmt.Errorf("%w: header has %d columns, want %d", ErrColumnCount, len(sh.Header), config.CanonicalColumnCount))
	}

	t := &Table{
		Columns: CanonicalColumns,
		Source:  append([]string(nil), sh.Header...),
		Records: make([]Record, 0, len(sh.Rows)),
	}
	for _, row := range sh.Rows {
		rec, err := recordFromRow(row)
		if err != nil {
			return nil, apperr.Wrap(apperr.ParseFailed, err)
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

func recordFromRow(row workbooks.Row) (Record, error) {
	var cells [config.CanonicalColumnCount]string
	// Trailing empty cells are trimmed by the reader; missing cells stay empty.
	copy(cells[:], row.Cells)

	val, err := decimal.NewFromString(cells[5])
	if err != nil {
		return Record{}, fmt.Errorf("%w: row %d column %s: invalid number %q", ErrParse, row.Number, ColValue, cells[5])
	}
	return Record{
		Row:       row.Number,
		StoreID:   cells[0],
		City:      cells[1],
		MonthYear: cells[2],
		Product:   cells[3],
		Quantity:  parseQuantity(cells[4]),
		Value:     val,
	}, nil
}

// parseQuantity reads the quantity cell leniently. Nothing downstream uses
// quantities, so a blank or malformed cell becomes NaN instead of an error.
func parseQuantity(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Values returns the value column in record order.
func (t *Table) Values() []decimal.Decimal {
	out := make([]decimal.Decimal, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Value
	}
	return out
}

// Total returns the sum of the value column.
func (t *Table) Total() decimal.Decimal {
	return decimal.Sum(decimal.Zero, t.Values()...)
}

// ParseMonths converts every month-year cell to the first instant of its
// month (UTC). Any malformed cell fails the whole table and leaves it untouched.
func (t *Table) ParseMonths() error {
	months := make([]time.Time, len(t.Records))
	for i, r := range t.Records {
		m, err := ParseMonthYear(r.MonthYear)
		if err != nil {
			return apperr.Wrap(apperr.ParseFailed, fmt.Errorf("row %d column %s: %w", r.Row, ColMonthYear, err))
		}
		months[i] = m
	}
	for i := range t.Records {
		t.Records[i].Month = months[i]
	}
	t.monthsParsed = true
	return nil
}

// MonthsParsed reports whether ParseMonths has run successfully.
func (t *Table) MonthsParsed() bool { return t.monthsParsed }

// ParseMonthYear parses "MM/YYYY" (or "M/YYYY") text, or an Excel serial date
// number, into the first day of that month in UTC.
func ParseMonthYear(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{config.MonthLayout, config.MonthLayoutLenient} {
		if m, err := time.Parse(layout, s); err == nil {
			return m, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if d, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: month-year %q does not match MM/YYYY", ErrParse, s)
}
