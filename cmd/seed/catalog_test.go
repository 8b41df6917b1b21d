package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

// ─── Lectura del CSV ─────────────────────────────────────────────────────────

func TestParseCatalog_ColumnasPorNombre(t *testing.T) {
	csv := "quantity;SKU;name;location;cost_price;reorder_point;expiry_date;batch\n" +
		"12,5;lim-001;Limón Tahití;Cocina;1.234,50;5;2026-06-01;L-7\n" +
		"3;gin-001;Ginebra;Bar Principal;;;;\n"

	rows, err := parseCatalog(strings.NewReader(csv), ';')
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "LIM-001", rows[0].SKU, "el SKU se normaliza a mayúsculas")
	assert.True(t, rows[0].Quantity.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, rows[0].CostPrice.Equal(decimal.RequireFromString("1234.50")))
	assert.Equal(t, "L-7", rows[0].Batch)
	require.NotNil(t, rows[0].ExpiryDate)
	assert.Equal(t, "2026-06-01", rows[0].ExpiryDate.Format("2006-01-02"))

	assert.Equal(t, "unit", rows[1].Unit, "unidad por defecto")
	assert.True(t, rows[1].CostPrice.IsZero())
	assert.Nil(t, rows[1].ExpiryDate)
}

func TestParseCatalog_Errores(t *testing.T) {
	cases := []struct {
		name string
		csv  string
		want string
	}{
		{"falta columna", "sku,name,quantity\nA,B,1\n", `falta la columna "location"`},
		{"cantidad inválida", "sku,name,location,quantity\nA,B,Bar,muchos\n", "línea 2: quantity"},
		{"fecha inválida", "sku,name,location,quantity,expiry_date\nA,B,Bar,1,01/06/2026\n", "expiry_date"},
		{"sku vacío", "sku,name,location,quantity\n,B,Bar,1\n", "línea 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseCatalog(strings.NewReader(tc.csv), ',')
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestDecoderFor_Windows1252(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().String("sku,name,location,quantity\nAZ-1,Azúcar,Bodega Café,2\n")
	require.NoError(t, err)

	r, err := decoderFor(strings.NewReader(raw), "windows-1252")
	require.NoError(t, err)
	rows, err := parseCatalog(r, ',')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Azúcar", rows[0].Name)
	assert.Equal(t, "Bodega Café", rows[0].Location)
}

func TestDecoderFor_CharsetDesconocido(t *testing.T) {
	_, err := decoderFor(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

// ─── Script SQL ──────────────────────────────────────────────────────────────

func TestWriteSeedSQL(t *testing.T) {
	csv := "sku,name,location,quantity,cost_price\n" +
		"RON-1,Ron O'Brien,Bar,4,20\n" +
		"RON-1,Ron O'Brien,bar,1,20\n" +
		"HIE-1,Hielo,Cocina,10,1\n"
	rows, err := parseCatalog(strings.NewReader(csv), ',')
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSeedSQL(&buf, rows, "export.csv"))
	sql := buf.String()

	assert.Contains(t, sql, "-- Generado desde export.csv")
	assert.Equal(t, 2, strings.Count(sql, "INSERT INTO locations"), "Bar y bar son la misma ubicación")
	assert.Equal(t, 2, strings.Count(sql, "INSERT INTO items"), "un insert por SKU")
	assert.Equal(t, 3, strings.Count(sql, "INSERT INTO inventory"))
	assert.Contains(t, sql, "'Ron O''Brien'", "las comillas se escapan")
	assert.NotContains(t, sql, "l.name = 'bar'", "las existencias usan el nombre canónico")
	assert.Contains(t, sql, itemID("RON-1"))
}

func TestIDsDeterministas(t *testing.T) {
	assert.Equal(t, itemID("GIN-001"), itemID("GIN-001"))
	assert.NotEqual(t, itemID("GIN-001"), itemID("GIN-002"))
	assert.Equal(t, locationID("Bar"), locationID("BAR"))
}
