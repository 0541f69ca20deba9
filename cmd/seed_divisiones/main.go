// seed_divisiones carga el catálogo DPA del INEC (provincias, cantones y
// parroquias del Ecuador) en PostgreSQL a partir del XML oficial de la
// codificación de la División Político-Administrativa.
//
// Uso: go run ./cmd/seed_divisiones [ruta/dpa.xml]
// Por defecto busca dpa.xml en el directorio actual. La conexión a la base
// usa la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/vecindo/registro-api/internal/domain/entity"
	"github.com/vecindo/registro-api/internal/infrastructure/postgres"
	"github.com/vecindo/registro-api/pkg/config"
)

type dpa struct {
	Provincias []provinciaXML `xml:"provincia"`
}

type provinciaXML struct {
	Codigo   string      `xml:"codigo,attr"`
	Nombre   string      `xml:"nombre,attr"`
	Cantones []cantonXML `xml:"canton"`
}

type cantonXML struct {
	Codigo     string         `xml:"codigo,attr"`
	Nombre     string         `xml:"nombre,attr"`
	Parroquias []parroquiaXML `xml:"parroquia"`
}

type parroquiaXML struct {
	Codigo string `xml:"codigo,attr"`
	Nombre string `xml:"nombre,attr"`
}

func main() {
	xmlPath := "dpa.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var doc dpa
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&doc); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	var provincias []*entity.Provincia
	var cantones []*entity.Canton
	var parroquias []*entity.Parroquia
	for _, p := range doc.Provincias {
		if p.Codigo == "" || p.Nombre == "" {
			continue
		}
		provincias = append(provincias, &entity.Provincia{
			ID:     strings.TrimSpace(p.Codigo),
			Nombre: strings.TrimSpace(p.Nombre),
		})
		for _, c := range p.Cantones {
			if c.Codigo == "" || c.Nombre == "" {
				continue
			}
			cantones = append(cantones, &entity.Canton{
				ID:          strings.TrimSpace(c.Codigo),
				ProvinciaID: strings.TrimSpace(p.Codigo),
				Nombre:      strings.TrimSpace(c.Nombre),
			})
			for _, pq := range c.Parroquias {
				if pq.Codigo == "" || pq.Nombre == "" {
					continue
				}
				parroquias = append(parroquias, &entity.Parroquia{
					ID:       strings.TrimSpace(pq.Codigo),
					CantonID: strings.TrimSpace(c.Codigo),
					Nombre:   strings.TrimSpace(pq.Nombre),
				})
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	seeder := postgres.NewDivisionSeeder(pool)
	if err := seeder.Seed(ctx, provincias, cantones, parroquias); err != nil {
		fmt.Fprintf(os.Stderr, "Cargar catálogo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Catálogo DPA cargado: %d provincias, %d cantones, %d parroquias\n",
		len(provincias), len(cantones), len(parroquias))
}
