// seed genera el script SQL de carga inicial (ubicaciones, artículos y existencias)
// a partir del CSV exportado por el POS del bar, o vuelca los datos demo a un archivo SQLite.
//
// Uso:
//
//	go run ./cmd/seed -in inventario.csv [-charset windows-1252] [-delim ';'] [-out ruta.sql]
//	go run ./cmd/seed -demo-sqlite data/stockwatch.db
//
// Columnas del CSV: sku, name, location, quantity (requeridas); unit, cost_price,
// reorder_point, batch, expiry_date (AAAA-MM-DD) opcionales.
// Por defecto escribe internal/infrastructure/postgres/migrations/002_seed_catalog.sql.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/stockwatch-api/internal/infrastructure/demo"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/sqlite"
)

func main() {
	in := flag.String("in", "", "CSV exportado del POS")
	charset := flag.String("charset", "utf-8", "codificación del CSV: utf-8, windows-1252, iso-8859-1")
	delim := flag.String("delim", ",", "separador de columnas")
	out := flag.String("out", "", "script SQL de salida")
	demoSQLite := flag.String("demo-sqlite", "", "vuelca los datos demo a este archivo SQLite y termina")
	flag.Parse()

	if *demoSQLite != "" {
		if err := seedDemoSQLite(*demoSQLite); err != nil {
			fmt.Fprintf(os.Stderr, "Cargar demo en SQLite: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Datos demo cargados en %s\n", *demoSQLite)
		return
	}

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	sep, size := utf8.DecodeRuneInString(*delim)
	if size == 0 || size != len(*delim) {
		fmt.Fprintf(os.Stderr, "Separador inválido: %q\n", *delim)
		os.Exit(2)
	}

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r, err := decoderFor(f, *charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	rows, err := parseCatalog(r, sep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		outPath = filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	}
	dst, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer dst.Close()

	if err := writeSeedSQL(dst, rows, filepath.Base(*in)); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d existencias\n", outPath, len(rows))
}

func seedDemoSQLite(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ds, err := demo.LoadDataset(time.Now())
	if err != nil {
		return err
	}
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	return sqlite.Import(ctx, db, ds)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
