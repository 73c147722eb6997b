package routers

import (
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/controllers"
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/middlewares"
	"github.com/go-chi/chi/v5"
)

func attachQuestionRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionController *controllers.QuestionController) {
	router.Get("/", questionController.GetAllQuestions)
}
