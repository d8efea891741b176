package router

import (
	"github.com/Mikheil23/FinalProject/internal/config"
	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/Mikheil23/FinalProject/internal/network/handlers"
	"github.com/Mikheil23/FinalProject/internal/network/middleware"
	"github.com/Mikheil23/FinalProject/internal/services"
	"github.com/Mikheil23/FinalProject/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config     config.Config
	Indentity  services.IdentityService
	Loans      services.LoansService
	Accountant services.AccountantService
	Sessions   storage.SessionsStorage
}

func NewRouter(config config.Config, identity services.IdentityService, loans services.LoansService,
	accountant services.AccountantService, sessions storage.SessionsStorage) *Router {
	return &Router{
		Config:     config,
		Indentity:  identity,
		Loans:      loans,
		Accountant: accountant,
		Sessions:   sessions,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Indentity.GetTokenAuth()
	limiter := middleware.NewRateLimiter(router.Config.Auth.RateLimit, router.Config.Auth.RateBurst)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(limiter.Handle)
				r.Post("/register", handlers.RegisterUserHandler(router.Indentity))
				r.Post("/register-accountant", handlers.RegisterAccountantHandler(router.Indentity))
				r.Post("/login", handlers.LoginHandler(router.Indentity))
			})
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Post("/logout", handlers.LogoutHandler(router.Indentity))
			})
		})
		r.Route("/user", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Use(middleware.RequireSession(router.Sessions))
			r.Use(middleware.RequireRole(models.RoleUser))
			r.Post("/loan-request", handlers.AddLoanRequestHandler(router.Loans))
			r.Get("/user-cabinet/{userId}", handlers.ViewUserCabinetHandler(router.Loans))
			r.Get("/{userId}/view-loans-history", handlers.ViewLoansHandler(router.Loans))
			r.Put("/users/{userId}/loans/{loanId}/update-loan", handlers.UpdateLoanHandler(router.Loans))
			r.Delete("/users/{userId}/loans/{loanId}/delete-loan", handlers.DeleteLoanHandler(router.Loans))
		})
		r.Route("/accountant", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Use(middleware.RequireSession(router.Sessions))
			r.Use(middleware.RequireRole(models.RoleAccountant))
			r.Get("/view-users", handlers.ViewUsersHandler(router.Accountant))
			r.Get("/view-loan-requests", handlers.ViewLoanRequestsHandler(router.Accountant))
			r.Patch("/block-or-unblock-user/{userId}", handlers.BlockOrUnblockUserHandler(router.Accountant))
			r.Patch("/change-loan-status/{userId}/{loanId}", handlers.ChangeLoanStatusHandler(router.Accountant))
			r.Delete("/delete-loan/{loanId}", handlers.AccountantDeleteLoanHandler(router.Accountant))
		})
	})
	return r
}
