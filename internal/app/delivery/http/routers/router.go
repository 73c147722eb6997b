package routers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cperault/clinical-screener-backend/internal/app/config"
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/controllers"
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/middlewares"
	"github.com/cperault/clinical-screener-backend/internal/pkg/constvars"
	"github.com/cperault/clinical-screener-backend/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	questionController *controllers.QuestionController,
	submissionController *controllers.SubmissionController,
	screenerController *controllers.ScreenerController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessHealthCheckMessage, nil)
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/questions", func(r chi.Router) {
				attachQuestionRoutes(r, middlewares, questionController)
			})

			r.Route("/answers", func(r chi.Router) {
				attachSubmissionRoutes(r, middlewares, submissionController)
			})

			r.Route("/screener", func(r chi.Router) {
				attachScreenerRoutes(r, middlewares, screenerController)
			})
		})
	})
}
