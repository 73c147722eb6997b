package routers

import (
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/controllers"
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/middlewares"
	"github.com/go-chi/chi/v5"
)

func attachSubmissionRoutes(router chi.Router, middlewares *middlewares.Middlewares, submissionController *controllers.SubmissionController) {
	router.Get("/", submissionController.GetAllAnswers)
	router.Post("/", submissionController.ProcessScreenerSubmission)
}
