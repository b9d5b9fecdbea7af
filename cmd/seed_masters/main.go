// seed_masters genera el script SQL que puebla los maestros de reportes
// (departamentos y divisiones de artículo) a partir del XML Maestros.xml
// exportado del ERP de origen, y crea el usuario admin de demostración.
//
// Uso: go run ./cmd/seed_masters [ruta/Maestros.xml]
// Por defecto busca Maestros.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_masters.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type maestros struct {
	Departamentos struct {
		Valores []valor `xml:"valor"`
	} `xml:"departamentos"`
	Divisiones struct {
		Valores []valor `xml:"valor"`
	} `xml:"divisiones"`
}

type valor struct {
	Cod    string `xml:"cod,attr"`
	Nombre string `xml:"nombre,attr"`
}

func main() {
	xmlPath := "Maestros.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var m maestros
	dec := xml.NewDecoder(f)
	// El export del ERP viene en ISO-8859-1.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&m); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("-- Generado por cmd/seed_masters. No editar a mano.\n")
	b.WriteString(fmt.Sprintf("-- Fuente: %s (%s)\n\n", filepath.Base(xmlPath), time.Now().Format("2006-01-02")))

	writeMaster(&b, "departments", m.Departamentos.Valores)
	writeMaster(&b, "divisions", m.Divisiones.Valores)

	// Usuario admin de demostración; la clave se pasa por env para no dejarla en el script.
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "cambiar-ya-admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de clave: %v\n", err)
		os.Exit(1)
	}
	companyID := uuid.New().String()
	b.WriteString("INSERT INTO users (id, company_id, email, password_hash, name, role, status, created_at, updated_at) VALUES\n")
	b.WriteString(fmt.Sprintf("    ('%s', '%s', 'admin@demo.local', '%s', 'Admin Demo', 'admin', 'active', NOW(), NOW())\n",
		uuid.New().String(), companyID, string(hash)))
	b.WriteString("ON CONFLICT (email) DO NOTHING;\n")

	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "002_seed_masters.sql")
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %s (%d departamentos, %d divisiones)\n", outPath, len(m.Departamentos.Valores), len(m.Divisiones.Valores))
}

// writeMaster emite el INSERT idempotente de un maestro código/nombre.
func writeMaster(b *strings.Builder, table string, valores []valor) {
	rows := make([]valor, 0, len(valores))
	for _, v := range valores {
		if v.Cod == "" || v.Nombre == "" {
			continue
		}
		rows = append(rows, v)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Cod < rows[j].Cod })
	if len(rows) == 0 {
		return
	}

	b.WriteString(fmt.Sprintf("INSERT INTO %s (code, name) VALUES\n", table))
	for i, v := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		b.WriteString(fmt.Sprintf("    ('%s', '%s')%s\n", escape(v.Cod), escape(v.Nombre), sep))
	}
	b.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name;\n\n")
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
