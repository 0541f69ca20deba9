package flow

import (
	"sync"

	"github.com/vecindo/registro-api/internal/domain/entity"
	"github.com/vecindo/registro-api/internal/domain/repository"
)

// DivisionCascade modela la selección dependiente provincia → cantón →
// parroquia como tres niveles de propiedad: elegir un padre limpia y recarga
// el hijo exactamente una vez por cambio. Un token de generación por nivel
// descarta las listas que lleguen tarde, para que una respuesta lenta y
// obsoleta no pise una selección más nueva.
type DivisionCascade struct {
	mu   sync.Mutex
	repo repository.DivisionRepository

	genCantones   uint64
	genParroquias uint64

	Provincias  []*entity.Provincia
	ProvinciaID string
	Cantones    []*entity.Canton
	CantonID    string
	Parroquias  []*entity.Parroquia
	ParroquiaID string
}

// NewDivisionCascade construye la cascada sobre el catálogo DPA.
func NewDivisionCascade(repo repository.DivisionRepository) *DivisionCascade {
	return &DivisionCascade{repo: repo}
}

// LoadProvincias carga el nivel raíz.
func (c *DivisionCascade) LoadProvincias() error {
	provincias, err := c.repo.ListProvincias()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.Provincias = provincias
	c.mu.Unlock()
	return nil
}

// SelectProvincia fija la provincia, limpia cantones y parroquias y recarga
// los cantones. Si mientras la carga estaba en vuelo se seleccionó otra
// provincia, el resultado se descarta.
func (c *DivisionCascade) SelectProvincia(provinciaID string) error {
	c.mu.Lock()
	c.ProvinciaID = provinciaID
	c.CantonID = ""
	c.ParroquiaID = ""
	c.Cantones = nil
	c.Parroquias = nil
	c.genCantones++
	c.genParroquias++
	gen := c.genCantones
	c.mu.Unlock()

	cantones, err := c.repo.ListCantones(provinciaID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.genCantones {
		return nil // respuesta obsoleta
	}
	c.Cantones = cantones
	return nil
}

// SelectCanton fija el cantón, limpia las parroquias y las recarga con la
// misma protección de token.
func (c *DivisionCascade) SelectCanton(cantonID string) error {
	c.mu.Lock()
	c.CantonID = cantonID
	c.ParroquiaID = ""
	c.Parroquias = nil
	c.genParroquias++
	gen := c.genParroquias
	c.mu.Unlock()

	parroquias, err := c.repo.ListParroquias(cantonID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.genParroquias {
		return nil
	}
	c.Parroquias = parroquias
	return nil
}

// SelectParroquia fija la hoja de la cascada.
func (c *DivisionCascade) SelectParroquia(parroquiaID string) {
	c.mu.Lock()
	c.ParroquiaID = parroquiaID
	c.mu.Unlock()
}

// Selection devuelve la selección vigente (provincia, cantón, parroquia).
func (c *DivisionCascade) Selection() (string, string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ProvinciaID, c.CantonID, c.ParroquiaID
}
