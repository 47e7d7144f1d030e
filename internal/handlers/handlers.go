package handlers

import (
	"net/http"

	_ "github.com/checkplatform/checkdesk/docs"
	adminhandlers "github.com/checkplatform/checkdesk/internal/handlers/admins"
	applicationhandlers "github.com/checkplatform/checkdesk/internal/handlers/applications"
	authhandlers "github.com/checkplatform/checkdesk/internal/handlers/auth"
	checkhandlers "github.com/checkplatform/checkdesk/internal/handlers/checks"
	commenthandlers "github.com/checkplatform/checkdesk/internal/handlers/comments"
	companyhandlers "github.com/checkplatform/checkdesk/internal/handlers/companies"
	sellerhandlers "github.com/checkplatform/checkdesk/internal/handlers/sellers"
	userhandlers "github.com/checkplatform/checkdesk/internal/handlers/users"
	"github.com/checkplatform/checkdesk/internal/service"
	pkgauth "github.com/checkplatform/checkdesk/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	UserLogin(w http.ResponseWriter, r *http.Request)
	AdminLogin(w http.ResponseWriter, r *http.Request)
	AdminRegister(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateInfo(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	ActiveCount(w http.ResponseWriter, r *http.Request)
	Selectors(w http.ResponseWriter, r *http.Request)
}

type CheckHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListForApplication(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Applications(w http.ResponseWriter, r *http.Request)
}

type SellerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	SavedCompanies(w http.ResponseWriter, r *http.Request)
	SaveCompany(w http.ResponseWriter, r *http.Request)
	RemoveSavedCompany(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CommentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ApplicationHandler ApplicationHandler
	CheckHandler       CheckHandler
	CompanyHandler     CompanyHandler
	SellerHandler      SellerHandler
	UserHandler        UserHandler
	AdminHandler       AdminHandler
	CommentHandler     CommentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		ApplicationHandler: applicationhandlers.New(s.ApplicationService),
		CheckHandler:       checkhandlers.New(s.CheckService),
		CompanyHandler:     companyhandlers.New(s.CompanyService, s.ApplicationService),
		SellerHandler:      sellerhandlers.New(s.SellerService),
		UserHandler:        userhandlers.New(s.UserService),
		AdminHandler:       adminhandlers.New(s.AdminService),
		CommentHandler:     commenthandlers.New(s.CommentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, jwt *pkgauth.JWTService) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.AuthHandler.UserLogin)
			r.Post("/admin/login", h.AuthHandler.AdminLogin)
			r.Post("/admin/register", h.AuthHandler.AdminRegister)
		})

		// client surface; the application and user paths are shared with the
		// back office, so they are registered flat instead of mounted
		r.Group(func(r chi.Router) {
			r.Use(jwt.ClientMiddleware)
			r.Post("/applications", h.ApplicationHandler.Create)
			r.Get("/applications/my", h.ApplicationHandler.ListMy)
			r.Get("/users/me", h.UserHandler.Me)
			r.Get("/users/me/companies", h.UserHandler.SavedCompanies)
			r.Post("/users/me/companies", h.UserHandler.SaveCompany)
			r.Delete("/users/me/companies/{id}", h.UserHandler.RemoveSavedCompany)
		})

		// comment threads are shared between admins and clients
		r.Group(func(r chi.Router) {
			r.Use(jwt.CombinedMiddleware)
			r.Get("/applications/{id}/comments", h.CommentHandler.List)
			r.Post("/applications/{id}/comments", h.CommentHandler.Create)
			r.Delete("/comments/{id}", h.CommentHandler.Delete)
		})

		// back-office surface
		r.Group(func(r chi.Router) {
			r.Use(jwt.AdminMiddleware)
			r.Get("/applications", h.ApplicationHandler.List)
			r.Get("/applications/export", h.ApplicationHandler.Export)
			r.Get("/applications/active-count", h.ApplicationHandler.ActiveCount)
			r.Get("/applications/selectors", h.ApplicationHandler.Selectors)
			r.Get("/applications/{id}", h.ApplicationHandler.GetByID)
			r.Put("/applications/{id}", h.ApplicationHandler.Update)
			r.Patch("/applications/{id}/info", h.ApplicationHandler.UpdateInfo)
			r.Post("/applications/{id}/status", h.ApplicationHandler.SetStatus)
			r.Get("/applications/{id}/history", h.ApplicationHandler.History)
			r.Get("/applications/{id}/checks", h.CheckHandler.ListForApplication)
			r.Delete("/applications/{id}/comments", h.CommentHandler.Clear)
			r.Route("/checks", func(r chi.Router) {
				r.Get("/", h.CheckHandler.List)
				r.Get("/export", h.CheckHandler.Export)
				r.Post("/", h.CheckHandler.Create)
				r.Put("/{id}", h.CheckHandler.Update)
				r.Delete("/{id}", h.CheckHandler.Delete)
			})
			r.Route("/companies", func(r chi.Router) {
				r.Get("/", h.CompanyHandler.List)
				r.Get("/{id}", h.CompanyHandler.GetByID)
				r.Put("/{id}", h.CompanyHandler.Update)
				r.Get("/{id}/applications", h.CompanyHandler.Applications)
			})
			r.Route("/sellers", func(r chi.Router) {
				r.Get("/", h.SellerHandler.List)
				r.Post("/", h.SellerHandler.Create)
				r.Get("/{id}", h.SellerHandler.GetByID)
				r.Put("/{id}", h.SellerHandler.Update)
				r.Delete("/{id}", h.SellerHandler.Delete)
			})
			r.Get("/users", h.UserHandler.List)
			r.Post("/users", h.UserHandler.Register)
			r.Put("/users/{id}", h.UserHandler.Update)
			r.Delete("/users/{id}", h.UserHandler.Delete)
			r.Route("/admins", func(r chi.Router) {
				r.Get("/", h.AdminHandler.List)
				// same handler as the public bootstrap route, but here the
				// middleware supplies the acting super admin
				r.Post("/", h.AuthHandler.AdminRegister)
				r.Get("/me", h.AdminHandler.Me)
				r.Put("/{id}", h.AdminHandler.Update)
				r.Delete("/{id}", h.AdminHandler.Delete)
			})
		})
	})

	return r
}
