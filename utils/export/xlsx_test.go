package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	content, err := XLSX(Sheet{
		Name:    "Transaksi",
		Headers: []string{"ID", "Nama Pengguna", "Total Harga"},
		Rows: [][]interface{}{
			{1, "Budi", "1.500.000"},
			{2, "Siti", "275.000.000"},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transaksi")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Nama Pengguna", "Total Harga"},
		{"1", "Budi", "1.500.000"},
		{"2", "Siti", "275.000.000"},
	}, rows)
}

func TestXLSX_DefaultSheetName(t *testing.T) {
	content, err := XLSX(Sheet{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
}
