package routers

import (
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/controllers"
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/middlewares"
	"github.com/go-chi/chi/v5"
)

func attachScreenerRoutes(router chi.Router, middlewares *middlewares.Middlewares, screenerController *controllers.ScreenerController) {
	router.Get("/", screenerController.GetScreener)
}
