// Package geo implementa el proveedor de geocodificación sobre un endpoint
// estilo Nominatim (formato XML). Solo lo consume el paso de dirección del
// asistente: búsqueda de texto libre y reverse de coordenadas.
package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vecindo/registro-api/internal/application/flow"
	"github.com/vecindo/registro-api/pkg/config"
)

var _ flow.Geocoder = (*NominatimClient)(nil)

// NominatimClient cliente HTTP del proveedor de geocodificación.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimClient construye el cliente con el timeout de la configuración.
// El proveedor exige un User-Agent identificable.
func NewNominatimClient(cfg config.GeoConfig) *NominatimClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NominatimClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search busca direcciones por texto libre, acotado a Ecuador.
func (c *NominatimClient) Search(ctx context.Context, query string) ([]flow.GeoResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "xml")
	params.Set("countrycodes", "ec")
	params.Set("limit", "8")

	doc, err := c.get(ctx, "/search?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var results []flow.GeoResult
	for _, place := range doc.FindElements("//place") {
		lat, err1 := decimal.NewFromString(place.SelectAttrValue("lat", ""))
		lng, err2 := decimal.NewFromString(place.SelectAttrValue("lon", ""))
		if err1 != nil || err2 != nil {
			continue // entrada sin coordenadas utilizables
		}
		results = append(results, flow.GeoResult{
			DisplayName: place.SelectAttrValue("display_name", ""),
			Lat:         lat,
			Lng:         lng,
		})
	}
	return results, nil
}

// Reverse deriva calles/ciudad/sector de un par de coordenadas. Los campos
// que el proveedor no conozca quedan vacíos; el formulario los deja editar.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lng decimal.Decimal) (*flow.GeoFields, error) {
	params := url.Values{}
	params.Set("lat", lat.String())
	params.Set("lon", lng.String())
	params.Set("format", "xml")

	doc, err := c.get(ctx, "/reverse?"+params.Encode())
	if err != nil {
		return nil, err
	}

	addr := doc.FindElement("//addressparts")
	if addr == nil {
		return &flow.GeoFields{}, nil
	}
	return &flow.GeoFields{
		Calles: childText(addr, "road"),
		Ciudad: firstChildText(addr, "city", "town", "village"),
		Sector: firstChildText(addr, "suburb", "neighbourhood", "quarter"),
	}, nil
}

func (c *NominatimClient) get(ctx context.Context, path string) (*etree.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request geo: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llamar geocoder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geocoder respondió %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("parsear XML del geocoder: %w", err)
	}
	return doc, nil
}

func childText(parent *etree.Element, tag string) string {
	if el := parent.FindElement(tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

func firstChildText(parent *etree.Element, tags ...string) string {
	for _, tag := range tags {
		if txt := childText(parent, tag); txt != "" {
			return txt
		}
	}
	return ""
}

// Normalizar pliega diacríticos y baja a minúsculas, para comparar nombres de
// divisiones contra el catálogo ("Cañar" y "canar" deben coincidir).
func Normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ToLower(strings.TrimSpace(out))
}
