package workbooks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vinodismyname/salesreport/pkg/apperr"
)

func createSalesWorkbook(t *testing.T, sheet string) string {
	t.Helper()
	f := excelize.NewFile()
	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Loja", "Cidade", "Mes", "Produto", "Qtde", "Valor"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, "Recife", "01/2024", "Camisa", 2, 100.5}))
	// Row 3 left blank on purpose.
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{2, " Natal ", "02/2024", "Calça", 1, 300}))

	dir := t.TempDir()
	path := filepath.Join(dir, "vendas.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoad_ReadsHeaderAndRows(t *testing.T) {
	path := createSalesWorkbook(t, "Sheet1")

	out, err := NewLoader().Load(context.Background(), path, "Sheet1")
	require.NoError(t, err)
	require.Equal(t, "Sheet1", out.Name)
	require.True(t, filepath.IsAbs(out.Path))
	require.Equal(t, []string{"Loja", "Cidade", "Mes", "Produto", "Qtde", "Valor"}, out.Header)
	require.Len(t, out.Rows, 2)

	require.Equal(t, 2, out.Rows[0].Number)
	require.Equal(t, []string{"1", "Recife", "01/2024", "Camisa", "2", "100.5"}, out.Rows[0].Cells)

	// Blank rows are skipped but row numbers keep the worksheet position.
	require.Equal(t, 4, out.Rows[1].Number)
	require.Equal(t, "Natal", out.Rows[1].Cells[1])
}

func TestLoad_PadsHeaderWithBlankLastColumn(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Loja", "Cidade", "Mes", "Produto", "Qtde"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{1, "Recife", "01/2024", "Camisa", 2, 100.5}))
	path := filepath.Join(t.TempDir(), "vendas.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, err := NewLoader().Load(context.Background(), path, "Sheet1")
	require.NoError(t, err)
	require.Equal(t, []string{"Loja", "Cidade", "Mes", "Produto", "Qtde", ""}, out.Header)
}

func TestLoad_MissingSheet(t *testing.T) {
	path := createSalesWorkbook(t, "Vendas")

	_, err := NewLoader().Load(context.Background(), path, "Sheet1")
	require.ErrorIs(t, err, ErrSheetNotFound)
	require.Equal(t, apperr.InvalidSheet, apperr.CodeOf(err))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"), "Sheet1")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, apperr.NotFound, apperr.CodeOf(err))
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "vendas.csv", "Sheet1")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	require.Equal(t, apperr.UnsupportedFormat, apperr.CodeOf(err))
}

func TestLoad_EmptySheetName(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "vendas.xlsx", "")
	require.Error(t, err)
	require.Equal(t, apperr.Validation, apperr.CodeOf(err))
}

func TestLoad_DirectoryIsNotAWorkbook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dir.xlsx")
	require.NoError(t, os.Mkdir(dir, 0o755))

	_, err := NewLoader().Load(context.Background(), dir, "Sheet1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_NotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	_, err := NewLoader().Load(context.Background(), path, "Sheet1")
	require.Error(t, err)
	require.Equal(t, apperr.CorruptWorkbook, apperr.CodeOf(err))
}

func TestLoadFile_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader().LoadFile(ctx, excelize.NewFile(), "Sheet1")
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, apperr.Canceled, apperr.CodeOf(err))
}
