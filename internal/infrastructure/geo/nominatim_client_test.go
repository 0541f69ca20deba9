package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindo/registro-api/pkg/config"
)

const searchXML = `<?xml version="1.0" encoding="UTF-8"?>
<searchresults>
  <place display_name="Av. Amazonas, Quito, Pichincha, Ecuador" lat="-0.1962" lon="-78.4897"/>
  <place display_name="Sin coordenadas" lat="" lon=""/>
  <place display_name="Malecón 2000, Guayaquil, Guayas, Ecuador" lat="-2.1894" lon="-79.8837"/>
</searchresults>`

const reverseXML = `<?xml version="1.0" encoding="UTF-8"?>
<reversegeocode>
  <result lat="-0.1962" lon="-78.4897">Av. Amazonas, La Mariscal, Quito</result>
  <addressparts>
    <road>Avenida Amazonas</road>
    <suburb>La Mariscal</suburb>
    <city>Quito</city>
  </addressparts>
</reversegeocode>`

func cliente(t *testing.T, handler http.HandlerFunc) *NominatimClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewNominatimClient(config.GeoConfig{
		BaseURL:        srv.URL,
		UserAgent:      "registro-api-test/1.0",
		TimeoutSeconds: 2,
	})
}

func TestSearch(t *testing.T) {
	var gotUA string
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		assert.Equal(t, "ec", r.URL.Query().Get("countrycodes"))
		w.Write([]byte(searchXML))
	})

	results, err := c.Search(context.Background(), "av amazonas quito")
	require.NoError(t, err)
	require.Len(t, results, 2, "la entrada sin coordenadas se descarta")
	assert.Equal(t, "Av. Amazonas, Quito, Pichincha, Ecuador", results[0].DisplayName)
	assert.Equal(t, "-0.1962", results[0].Lat.String())
	assert.Equal(t, "registro-api-test/1.0", gotUA)
}

func TestReverse(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-0.1962", r.URL.Query().Get("lat"))
		w.Write([]byte(reverseXML))
	})

	lat, _ := decimal.NewFromString("-0.1962")
	lng, _ := decimal.NewFromString("-78.4897")
	fields, err := c.Reverse(context.Background(), lat, lng)
	require.NoError(t, err)
	assert.Equal(t, "Avenida Amazonas", fields.Calles)
	assert.Equal(t, "Quito", fields.Ciudad)
	assert.Equal(t, "La Mariscal", fields.Sector)
}

func TestReverse_SinAddressparts(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<reversegeocode><error>Unable to geocode</error></reversegeocode>`))
	})

	fields, err := c.Reverse(context.Background(), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, fields.Calles)
}

func TestGet_ErrorHTTP(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := c.Search(context.Background(), "quito")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNormalizar(t *testing.T) {
	casos := []struct{ in, want string }{
		{"Cañar", "canar"},
		{"  Santo Domingo  ", "santo domingo"},
		{"BOLÍVAR", "bolivar"},
		{"Sucumbíos", "sucumbios"},
		{"Francisco de Orellana", "francisco de orellana"},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, Normalizar(c.in), c.in)
	}
}
