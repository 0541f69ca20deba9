package entity

// División político-administrativa del Ecuador (catálogo paramétrico):
// provincia → cantón → parroquia. Los IDs son los códigos DPA del INEC.

// Provincia nivel 1 de la DPA.
type Provincia struct {
	ID     string
	Nombre string
}

// Canton nivel 2 de la DPA, pertenece a una provincia.
type Canton struct {
	ID          string
	ProvinciaID string
	Nombre      string
}

// Parroquia nivel 3 de la DPA, pertenece a un cantón.
type Parroquia struct {
	ID       string
	CantonID string
	Nombre   string
}
