package repository

import "github.com/vecindo/registro-api/internal/domain/entity"

// DivisionRepository catálogo paramétrico de la DPA (provincia/cantón/parroquia).
type DivisionRepository interface {
	ListProvincias() ([]*entity.Provincia, error)
	ListCantones(provinciaID string) ([]*entity.Canton, error)
	ListParroquias(cantonID string) ([]*entity.Parroquia, error)
}
