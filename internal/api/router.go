package api

import (
	"net/http"
	"time"

	"portfolio_api/internal/api/handler"
	"portfolio_api/internal/api/middleware"
	"portfolio_api/internal/app/service"
	"portfolio_api/internal/common/security"
	"portfolio_api/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	userRepo repository.UserRepository,
	authService *service.AuthService,
	projectService *service.ProjectService,
	skillService *service.SkillService,
	contactService *service.ContactService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Token verification runs on every request and stashes the result in the
	// context; the Authenticator middleware turns it into a loaded identity
	// only on routes that require one. The session cookie wins over the
	// Authorization header.
	r.Use(jwtauth.Verify(security.TokenAuth, middleware.TokenFromCookie, jwtauth.TokenFromHeader))

	authenticate := middleware.Authenticator(userRepo)

	metaHandler := handler.NewMetaHandler()
	r.Get("/", metaHandler.Root)

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Get("/", metaHandler.Index)
		apiRouter.Get("/health", metaHandler.Health)

		authHandler := handler.NewAuthHandler(authService, authenticate)
		apiRouter.Route("/auth", authHandler.RegisterRoutes)

		projectHandler := handler.NewProjectHandler(projectService, authenticate)
		apiRouter.Route("/projects", projectHandler.RegisterRoutes)

		skillHandler := handler.NewSkillHandler(skillService, authenticate)
		apiRouter.Route("/skills", skillHandler.RegisterRoutes)

		contactHandler := handler.NewContactHandler(contactService, authenticate)
		apiRouter.Route("/contact", contactHandler.RegisterRoutes)
	})

	return r
}
