package workbooks

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/vinodismyname/salesreport/pkg/apperr"
	"github.com/vinodismyname/salesreport/pkg/validation"
)

var (
	// ErrUnsupportedFormat indicates the path does not carry an Excel extension.
	ErrUnsupportedFormat = errors.New("workbooks: unsupported format")
	// ErrNotFound indicates the workbook does not exist or is not accessible.
	ErrNotFound = errors.New("workbooks: file not found")
	// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
	ErrSheetNotFound = errors.New("workbooks: sheet not found")
)

// LoadInput names the workbook and sheet to read.
type LoadInput struct {
	Path  string `validate:"required,filepath_ext"`
	Sheet string `validate:"required"`
}

// Sheet is the raw content of one worksheet: the first non-empty row as
// header and every following non-empty row as data.
type Sheet struct {
	Path   string
	Name   string
	Header []string
	Rows   []Row
}

// Row is a data row with its 1-based worksheet row number.
type Row struct {
	Number int
	Cells  []string
}

// Loader reads worksheets into memory.
type Loader struct{}

// NewLoader constructs a Loader.
func NewLoader() *Loader { return &Loader{} }

// Load opens the workbook at path and reads the named sheet.
func (l *Loader) Load(ctx context.Context, path, sheet string) (*Sheet, error) {
	in := LoadInput{Path: path, Sheet: sheet}
	if msg := validation.ValidateStruct(in); msg != "" {
		if strings.TrimSpace(path) != "" && strings.HasPrefix(msg, "path must be") {
			return nil, apperr.Wrap(apperr.UnsupportedFormat, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path)))
		}
		return nil, apperr.Wrapf(apperr.Validation, "workbooks: %s", msg)
	}
	if err := ctx.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Canceled, err)
	}

	canonical, err := canonicalPath(path)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(canonical)
	if err != nil {
		code := apperr.OpenFailed
		if errors.Is(err, zip.ErrFormat) || errors.Is(err, excelize.ErrWorkbookFileFormat) {
			code = apperr.CorruptWorkbook
		}
		return nil, apperr.Wrap(code, fmt.Errorf("workbooks: open %q: %w", canonical, err))
	}
	defer func() { _ = f.Close() }()

	out, err := l.LoadFile(ctx, f, sheet)
	if err != nil {
		return nil, err
	}
	out.Path = canonical
	return out, nil
}

// LoadFile reads the named sheet from an already-open workbook. Cells are read
// raw so numbers and dates arrive unformatted.
func (l *Loader) LoadFile(ctx context.Context, f *excelize.File, sheet string) (*Sheet, error) {
	if f == nil {
		return nil, apperr.Wrapf(apperr.Internal, "workbooks: nil excelize file")
	}
	if err := ctx.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Canceled, err)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		var missing excelize.ErrSheetNotExist
		if errors.As(err, &missing) || apperr.IsInvalidSheet(err) {
			return nil, apperr.Wrap(apperr.InvalidSheet, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet))
		}
		return nil, apperr.Wrap(apperr.ReadFailed, fmt.Errorf("workbooks: read sheet %q: %w", sheet, err))
	}

	out := &Sheet{Name: sheet}
	for i, vals := range rows {
		if isBlank(vals) {
			continue
		}
		cells := make([]string, len(vals))
		for j, v := range vals {
			cells[j] = strings.TrimSpace(v)
		}
		if out.Header == nil {
			out.Header = cells
			continue
		}
		out.Rows = append(out.Rows, Row{Number: i + 1, Cells: cells})
	}
	padHeader(out)

	zerolog.Ctx(ctx).Debug().
		Str("sheet", sheet).
		Int("columns", len(out.Header)).
		Int("rows", len(out.Rows)).
		Msg("sheet loaded")
	return out, nil
}

// canonicalPath resolves path to an absolute, symlink-free path of an existing
// regular file.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", apperr.Wrap(apperr.OpenFailed, fmt.Errorf("workbooks: abs path: %w", err))
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", apperr.Wrap(apperr.NotFound, fmt.Errorf("%w: %s", ErrNotFound, abs))
		}
		return "", apperr.Wrap(apperr.OpenFailed, fmt.Errorf("workbooks: eval symlinks: %w", err))
	}
	info, err := os.Stat(real)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", apperr.Wrap(apperr.NotFound, fmt.Errorf("%w: %s", ErrNotFound, real))
		}
		return "", apperr.Wrap(apperr.OpenFailed, fmt.Errorf("workbooks: stat: %w", err))
	}
	if info.IsDir() {
		return "", apperr.Wrap(apperr.NotFound, fmt.Errorf("%w: %s is a directory", ErrNotFound, real))
	}
	return real, nil
}

// padHeader extends the header with empty names up to the widest data row.
// The reader drops trailing empty cells, so a blank last header cell would
// otherwise shorten the header.
func padHeader(sh *Sheet) {
	width := len(sh.Header)
	for _, r := range sh.Rows {
		width = max(width, len(r.Cells))
	}
	for len(sh.Header) < width {
		sh.Header = append(sh.Header, "")
	}
}

func isBlank(vals []string) bool {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
