package main

import (
	"net/http"
	"os"

	_ "github.com/Nathal25/LUMIX-BACKEND/docs" // swagger docs

	"github.com/Nathal25/LUMIX-BACKEND/internal/config"
	"github.com/Nathal25/LUMIX-BACKEND/internal/db"
	"github.com/Nathal25/LUMIX-BACKEND/internal/handler"
	"github.com/Nathal25/LUMIX-BACKEND/internal/mail"
	"github.com/Nathal25/LUMIX-BACKEND/internal/pexels"
	"github.com/Nathal25/LUMIX-BACKEND/internal/repository"
	"github.com/Nathal25/LUMIX-BACKEND/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"
)

// @title LUMIX API
// @version 1.0
// @description Movie catalog backend: users, movies from Pexels, favorites and reviews
// @BasePath /api/v1
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	db.InitMongo(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	favoriteRepo := repository.NewFavoriteRepository()
	reviewRepo := repository.NewReviewRepository()

	// services
	mailer := mail.NewSMTPMailer(cfg)
	provider := pexels.NewClient(cfg.PexelsAPIKey)

	authSvc := service.NewAuthService(userRepo, mailer, cfg.JWTSecret, cfg.AppBaseURL)
	movieSvc := service.NewMovieService(movieRepo, provider)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, movieRepo)
	reviewSvc := service.NewReviewService(reviewRepo, movieRepo)

	// handlers
	cookieOpts := handler.CookieOptions{
		Secure:   cfg.Production(),
		SameSite: cfg.CookieSameSite,
	}
	authH := handler.NewAuthHandler(authSvc, cookieOpts)
	movieH := handler.NewMovieHandler(movieSvc)
	favoriteH := handler.NewFavoriteHandler(favoriteSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	authMw := handler.RequireAuth(authSvc)
	credentialLimiter := rate.NewLimiter(5, 10)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.Health)

		// public
		r.Group(func(r chi.Router) {
			r.Use(handler.RateLimit(credentialLimiter))

			r.Post("/users/register", authH.Register)
			r.Post("/users/login", authH.Login)
			r.Post("/users/forgot-password", authH.ForgotPassword)
			r.Post("/users/reset-password", authH.ResetPassword)
		})
		r.Post("/users/logout", authH.Logout)

		r.Get("/movies", movieH.List)
		r.Get("/movies/{id}", movieH.Get)

		r.Get("/reviews/movie/{movieId}", reviewH.ListByMovie)
		r.Get("/reviews/movie/{movieId}/average", reviewH.Average)
		r.Get("/reviews/user/{userId}", reviewH.ListByUser)

		// session required
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/users/me", authH.Me)
			r.Patch("/users/me", authH.UpdateMe)
			r.Delete("/users/me", authH.DeleteMe)

			r.Post("/movies/sync", movieH.Sync)

			r.Post("/favorites", favoriteH.Create)
			r.Get("/favorites/user/{userId}", favoriteH.ListByUser)
			r.Delete("/favorites/{id}", favoriteH.Delete)

			r.Post("/reviews", reviewH.Create)
			r.Put("/reviews/movie/{movieId}", reviewH.Update)
			r.Delete("/reviews/{id}", reviewH.Delete)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Info().Str("port", cfg.HTTPPort).Msg("http listening")
	if err := http.ListenAndServe(":"+cfg.HTTPPort, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
