package flow_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindo/registro-api/internal/application/flow"
	"github.com/vecindo/registro-api/internal/domain/entity"
)

type fakeDivisionRepo struct {
	mu sync.Mutex
	// gates por provincia: si existe, ListCantones bloquea hasta recibir.
	gates map[string]chan struct{}
}

func (r *fakeDivisionRepo) ListProvincias() ([]*entity.Provincia, error) {
	return []*entity.Provincia{
		{ID: "09", Nombre: "Guayas"},
		{ID: "17", Nombre: "Pichincha"},
	}, nil
}

func (r *fakeDivisionRepo) ListCantones(provinciaID string) ([]*entity.Canton, error) {
	r.mu.Lock()
	gate := r.gates[provinciaID]
	r.mu.Unlock()
	if gate != nil {
		<-gate
	}
	switch provinciaID {
	case "09":
		return []*entity.Canton{{ID: "0901", ProvinciaID: "09", Nombre: "Guayaquil"}}, nil
	case "17":
		return []*entity.Canton{{ID: "1701", ProvinciaID: "17", Nombre: "Quito"}}, nil
	}
	return nil, nil
}

func (r *fakeDivisionRepo) ListParroquias(cantonID string) ([]*entity.Parroquia, error) {
	if cantonID == "1701" {
		return []*entity.Parroquia{
			{ID: "170150", CantonID: "1701", Nombre: "Quito Distrito Metropolitano"},
			{ID: "170151", CantonID: "1701", Nombre: "Alangasí"},
		}, nil
	}
	return nil, nil
}

func TestDivisionCascade_SeleccionDependiente(t *testing.T) {
	c := flow.NewDivisionCascade(&fakeDivisionRepo{})
	require.NoError(t, c.LoadProvincias())
	require.Len(t, c.Provincias, 2)

	require.NoError(t, c.SelectProvincia("17"))
	require.Len(t, c.Cantones, 1)
	assert.Equal(t, "Quito", c.Cantones[0].Nombre)

	require.NoError(t, c.SelectCanton("1701"))
	require.Len(t, c.Parroquias, 2)
	c.SelectParroquia("170150")

	p, ca, pa := c.Selection()
	assert.Equal(t, []string{"17", "1701", "170150"}, []string{p, ca, pa})
}

func TestDivisionCascade_CambiarPadreLimpiaHijos(t *testing.T) {
	c := flow.NewDivisionCascade(&fakeDivisionRepo{})
	require.NoError(t, c.SelectProvincia("17"))
	require.NoError(t, c.SelectCanton("1701"))
	c.SelectParroquia("170150")

	// Cambiar la provincia invalida cantón y parroquia seleccionados.
	require.NoError(t, c.SelectProvincia("09"))
	p, ca, pa := c.Selection()
	assert.Equal(t, "09", p)
	assert.Empty(t, ca)
	assert.Empty(t, pa)
	assert.Empty(t, c.Parroquias)
	require.Len(t, c.Cantones, 1)
	assert.Equal(t, "Guayaquil", c.Cantones[0].Nombre)
}

func TestDivisionCascade_RespuestaLentaNoDescartaSeleccionNueva(t *testing.T) {
	repo := &fakeDivisionRepo{gates: map[string]chan struct{}{"17": make(chan struct{})}}
	c := flow.NewDivisionCascade(repo)

	// La carga de cantones de Pichincha queda en vuelo...
	done := make(chan struct{})
	go func() {
		_ = c.SelectProvincia("17")
		close(done)
	}()

	// ...mientras el usuario cambia a Guayas, cuya carga resuelve al instante.
	// El token de generación de la primera carga quedó desactualizado con este
	// cambio, así que esperar a que Guayas termine basta para armar la carrera.
	require.Eventually(t, func() bool {
		p, _, _ := c.Selection()
		return p == "17"
	}, time.Second, time.Millisecond)
	require.NoError(t, c.SelectProvincia("09"))
	require.Len(t, c.Cantones, 1)
	require.Equal(t, "Guayaquil", c.Cantones[0].Nombre)

	// Liberar la respuesta lenta: no debe pisar los cantones de Guayas.
	close(repo.gates["17"])
	<-done
	assert.Equal(t, "09", c.ProvinciaID)
	require.Len(t, c.Cantones, 1)
	assert.Equal(t, "Guayaquil", c.Cantones[0].Nombre, "la lista obsoleta se descarta")
}
