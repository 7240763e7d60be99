package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"francadash/domain/metrics"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadData_CSV(t *testing.T) {
	path := writeTempCSV(t,
		"Tipo de resultado,Resultados,Valor usado (BRL)\n"+
			"Conversas por mensagem,5,100\n"+
			"Visitas ao perfil,20,40\n")

	data, err := NewDataReader(path).ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"Tipo de resultado", "Resultados", "Valor usado (BRL)"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Conversas por mensagem", data.Rows[0][metrics.ColResultType])
	assert.Equal(t, "5", data.Rows[0][metrics.ColResults])
	assert.Equal(t, "40", data.Rows[1][metrics.ColInvestment])
}

func TestReadData_CSVRaggedRows(t *testing.T) {
	path := writeTempCSV(t,
		"Tipo de resultado,Resultados,Valor usado (BRL)\n"+
			"Conversas,3\n"+
			"Leads,4,10,extra\n")

	data, err := NewDataReader(path).ReadData()
	require.NoError(t, err)

	require.Len(t, data.Rows, 2)
	// Short row omits the missing trailing column.
	_, ok := data.Rows[0][metrics.ColInvestment]
	assert.False(t, ok)
	// Extra cells beyond the header width are dropped.
	assert.Equal(t, "10", data.Rows[1][metrics.ColInvestment])
}

func TestReadData_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Tipo de resultado", "Resultados", "Valor usado (BRL)"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Compras no site", 7, 210.5}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	data, err := NewDataReader(path).ReadData()
	require.NoError(t, err)

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "Compras no site", data.Rows[0][metrics.ColResultType])
	assert.Equal(t, "7", data.Rows[0][metrics.ColResults])
	assert.Equal(t, "210.5", data.Rows[0][metrics.ColInvestment])
}

func TestReadData_MissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.xlsx")).ReadData()
	assert.Error(t, err)
}

func TestReadData_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "Tipo de resultado,Resultados\n")

	_, err := NewDataReader(path).ReadData()
	assert.Error(t, err)
}

func TestReadData_CorruptXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := NewDataReader(path).ReadData()
	assert.Error(t, err)
}
