package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vecindo/registro-api/internal/application/auth"
	"github.com/vecindo/registro-api/internal/application/flow"
	"github.com/vecindo/registro-api/internal/application/registro"
	"github.com/vecindo/registro-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Registry     *flow.Registry
	ConstanciaUC *registro.ConstanciaUseCase
	Divisions    repository.DivisionRepository
	Geocoder     flow.Geocoder
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo DPA (público: lo consume el formulario antes de elegir)
	divisiones := api.Group("/divisiones")
	divisionHandler := NewDivisionHandler(deps.Divisions)
	divisiones.Get("/provincias", divisionHandler.Provincias)
	divisiones.Get("/provincias/:id/cantones", divisionHandler.Cantones)
	divisiones.Get("/cantones/:id/parroquias", divisionHandler.Parroquias)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Geocodificación (protegido: solo el mapa del asistente la usa)
	geo := protected.Group("/geo")
	geoHandler := NewGeoHandler(deps.Geocoder)
	geo.Get("/search", geoHandler.Search)
	geo.Get("/reverse", geoHandler.Reverse)

	// Asistente de registro (protegido + sesión por cuenta)
	reg := protected.Group("/registro", WithSession(deps.Registry))
	flowHandler := NewFlowHandler()
	reg.Get("/estado", flowHandler.Estado)
	reg.Post("/navegar", flowHandler.Navegar)
	reg.Post("/cancelar", flowHandler.Cancelar)
	reg.Post("/rol", flowHandler.Rol)
	reg.Post("/perfil", flowHandler.Perfil)
	reg.Post("/negocio", flowHandler.Negocio)
	reg.Post("/direccion", flowHandler.Direccion)
	reg.Post("/verificacion/iniciar", flowHandler.IniciarVerificacion)
	reg.Post("/verificacion/omitir", flowHandler.OmitirVerificacion)
	reg.Post("/verificacion/finalizar", flowHandler.FinalizarVerificacion)
	reg.Post("/verificacion-negocio", flowHandler.VerificacionNegocio)

	// Constancia (protegido; el gating de completitud vive en el use case)
	constanciaHandler := NewConstanciaHandler(deps.ConstanciaUC)
	reg.Get("/constancia", constanciaHandler.Descargar)
}
