package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/database"
	"github.com/icei-ads/portal-eventos/handlers"
	agenda_handlers "github.com/icei-ads/portal-eventos/handlers/agenda"
	auth_handlers "github.com/icei-ads/portal-eventos/handlers/auth"
	comentario_handlers "github.com/icei-ads/portal-eventos/handlers/comentario"
	evento_handlers "github.com/icei-ads/portal-eventos/handlers/evento"
	formulario_handlers "github.com/icei-ads/portal-eventos/handlers/formulario"
	materia_handlers "github.com/icei-ads/portal-eventos/handlers/materia"
	professor_handlers "github.com/icei-ads/portal-eventos/handlers/professor"
	projeto_handlers "github.com/icei-ads/portal-eventos/handlers/projeto"
	usuario_handlers "github.com/icei-ads/portal-eventos/handlers/usuario"
	"github.com/icei-ads/portal-eventos/utils"
	"github.com/icei-ads/portal-eventos/utils/auth"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get JWT secret from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "portal-eventos-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: 24 * time.Hour, // Session token expires in 24 hours
		Issuer: jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager)
	usuarioHandler := usuario_handlers.NewUsuarioHandler(db)
	eventoHandler := evento_handlers.NewEventoHandler(db)
	comentarioHandler := comentario_handlers.NewComentarioHandler(db)
	professorHandler := professor_handlers.NewProfessorHandler(db)
	projetoHandler := projeto_handlers.NewProjetoHandler(db)
	materiaHandler := materia_handlers.NewMateriaHandler(db)
	agendaHandler := agenda_handlers.NewAgendaHandler(db)
	formularioHandler := formulario_handlers.NewFormularioHandler(db, os.Getenv("PLANILHA_URL"))

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	api := app.Group("/api")
	api.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// Auth
	api.Post("/login", authHandler.Login)

	// Usuarios
	api.Get("/usuarios", usuarioHandler.ListUsuarios)
	api.Post("/usuarios", usuarioHandler.CreateUsuario)
	api.Put("/usuarios/:id", usuarioHandler.UpdateUsuario)
	api.Delete("/usuarios/:id", usuarioHandler.DeleteUsuario)

	// Eventos
	eventos := api.Group("/eventos")
	eventos.Get("/", eventoHandler.ListEventos)
	eventos.Post("/", eventoHandler.CreateEvento)
	eventos.Get("/:id", eventoHandler.GetEvento)
	eventos.Put("/:id", eventoHandler.UpdateEvento)
	eventos.Delete("/:id", eventoHandler.DeleteEvento)

	// Comentarios, scoped to their event
	comentarios := api.Group("/eventos/:eventoId/comentarios")
	comentarios.Get("/", comentarioHandler.ListComentarios)
	comentarios.Post("/", comentarioHandler.CreateComentario)
	comentarios.Put("/:comentarioId", comentarioHandler.UpdateComentario)
	comentarios.Delete("/:comentarioId", comentarioHandler.DeleteComentario)

	// Professores coordenadores
	professores := api.Group("/professores")
	professores.Get("/", professorHandler.ListProfessores)
	professores.Post("/", professorHandler.CreateProfessor)
	professores.Put("/:id", professorHandler.UpdateProfessor)
	professores.Delete("/:id", professorHandler.DeleteProfessor)

	// Projetos de pesquisa
	pesquisa := api.Group("/projetos-pesquisa")
	pesquisa.Get("/", projetoHandler.ListPesquisa)
	pesquisa.Post("/", projetoHandler.CreatePesquisa)
	pesquisa.Put("/:id", projetoHandler.UpdatePesquisa)
	pesquisa.Delete("/:id", projetoHandler.DeletePesquisa)

	// Projetos de extensão
	extensao := api.Group("/projetos-extensao")
	extensao.Get("/", projetoHandler.ListExtensao)
	extensao.Post("/", projetoHandler.CreateExtensao)
	extensao.Put("/:id", projetoHandler.UpdateExtensao)
	extensao.Delete("/:id", projetoHandler.DeleteExtensao)

	// Matérias
	materias := api.Group("/materias")
	materias.Get("/", materiaHandler.ListMaterias)
	materias.Post("/", materiaHandler.CreateMateria)
	materias.Put("/:id", materiaHandler.UpdateMateria)
	materias.Delete("/:id", materiaHandler.DeleteMateria)

	// Agenda and dashboard aggregations
	api.Get("/agenda", agendaHandler.GetAgenda)
	api.Get("/relatorios", agendaHandler.GetRelatorios)

	// Dynamic event form schema
	api.Get("/formulario/evento", formularioHandler.GetEventoForm)
}
