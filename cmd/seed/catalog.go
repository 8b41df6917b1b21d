package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// seedNamespace base de los UUID v5: el mismo SKU o ubicación produce siempre el mismo id.
var seedNamespace = uuid.MustParse("6f1b8f4e-5a57-4c0e-9d0a-3e1f7f0b2c11")

// catalogRow una fila del export (artículo + existencia en una ubicación).
type catalogRow struct {
	SKU          string
	Name         string
	Unit         string
	CostPrice    decimal.Decimal
	ReorderPoint decimal.Decimal
	Location     string
	Quantity     decimal.Decimal
	Batch        string
	ExpiryDate   *time.Time
}

var requiredColumns = []string{"sku", "name", "location", "quantity"}

// decoderFor envuelve r según el charset del export. Los POS antiguos exportan en Windows-1252.
func decoderFor(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "_", "-")) {
	case "", "utf-8", "utf8":
		return r, nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
}

// parseCatalog lee el CSV con encabezado. Las columnas se ubican por nombre, sin importar el orden.
func parseCatalog(r io.Reader, delim rune) ([]catalogRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("falta la columna %q", name)
		}
	}
	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []catalogRow
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row := catalogRow{
			SKU:      strings.ToUpper(field(rec, "sku")),
			Name:     field(rec, "name"),
			Unit:     field(rec, "unit"),
			Location: field(rec, "location"),
			Batch:    field(rec, "batch"),
		}
		if row.SKU == "" || row.Name == "" || row.Location == "" {
			return nil, fmt.Errorf("línea %d: sku, name y location son requeridos", line)
		}
		if row.Unit == "" {
			row.Unit = "unit"
		}
		if row.Quantity, err = parseAmount(field(rec, "quantity")); err != nil {
			return nil, fmt.Errorf("línea %d: quantity: %w", line, err)
		}
		if row.CostPrice, err = parseAmount(field(rec, "cost_price")); err != nil {
			return nil, fmt.Errorf("línea %d: cost_price: %w", line, err)
		}
		if row.ReorderPoint, err = parseAmount(field(rec, "reorder_point")); err != nil {
			return nil, fmt.Errorf("línea %d: reorder_point: %w", line, err)
		}
		if raw := field(rec, "expiry_date"); raw != "" {
			t, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return nil, fmt.Errorf("línea %d: expiry_date %q (formato AAAA-MM-DD)", line, raw)
			}
			row.ExpiryDate = &t
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseAmount acepta "12.5", "12,5" y "1.234,50". Vacío = 0.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

func itemID(sku string) string { return uuid.NewSHA1(seedNamespace, []byte("item:"+sku)).String() }
func locationID(name string) string { return uuid.NewSHA1(seedNamespace, []byte("location:"+strings.ToLower(name))).String() }

// writeSeedSQL escribe ubicaciones, artículos y existencias como upserts idempotentes.
// Las ubicaciones se resuelven por nombre. Un SKU repetido toma nombre, costo y punto de reorden de su primera aparición.
func writeSeedSQL(w io.Writer, rows []catalogRow, source string) error {
	var b strings.Builder
	b.WriteString("-- Catálogo e inventario inicial\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)

	// id de ubicación -> nombre tal como aparece la primera vez
	locations := map[string]string{}
	for _, r := range rows {
		if _, ok := locations[locationID(r.Location)]; !ok {
			locations[locationID(r.Location)] = r.Location
		}
	}
	locIDs := make([]string, 0, len(locations))
	for id := range locations {
		locIDs = append(locIDs, id)
	}
	sort.Slice(locIDs, func(i, j int) bool { return locations[locIDs[i]] < locations[locIDs[j]] })

	b.WriteString("-- 1. Ubicaciones\n")
	for _, id := range locIDs {
		fmt.Fprintf(&b, "INSERT INTO locations (id, name) VALUES ('%s', '%s')\n", id, escapeSQL(locations[id]))
		b.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	}

	b.WriteString("\n-- 2. Artículos\n")
	seen := map[string]bool{}
	for _, r := range rows {
		if seen[r.SKU] {
			continue
		}
		seen[r.SKU] = true
		b.WriteString("INSERT INTO items (id, sku, name, unit_of_measure, cost_price, reorder_point, requires_batch_tracking)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', %s, %s, %t)\n",
			itemID(r.SKU), escapeSQL(r.SKU), escapeSQL(r.Name), escapeSQL(r.Unit),
			r.CostPrice.String(), r.ReorderPoint.String(), r.Batch != "")
		b.WriteString("ON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name, cost_price = EXCLUDED.cost_price,\n")
		b.WriteString("  reorder_point = EXCLUDED.reorder_point, updated_at = now();\n")
	}

	b.WriteString("\n-- 3. Existencias\n")
	for _, r := range rows {
		expiry := "NULL"
		if r.ExpiryDate != nil {
			expiry = fmt.Sprintf("'%s'", r.ExpiryDate.Format("2006-01-02"))
		}
		b.WriteString("INSERT INTO inventory (item_id, location_id, quantity, batch_number, expiry_date)\n")
		fmt.Fprintf(&b, "SELECT i.id, l.id, %s, '%s', %s FROM items i, locations l WHERE i.sku = '%s' AND l.name = '%s'\n",
			r.Quantity.String(), escapeSQL(r.Batch), expiry, escapeSQL(r.SKU), escapeSQL(locations[locationID(r.Location)]))
		b.WriteString("ON CONFLICT (item_id, location_id, batch_number) DO UPDATE SET quantity = EXCLUDED.quantity,\n")
		b.WriteString("  expiry_date = EXCLUDED.expiry_date, updated_at = now();\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
