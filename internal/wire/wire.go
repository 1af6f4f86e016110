package wire

import (
	"net/http"

	"junk-hauling/internal/adaptor"
	"junk-hauling/internal/data/repository"
	"junk-hauling/internal/usecase"
	"junk-hauling/pkg/filestore"
	"junk-hauling/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, photos filestore.FileStore, logger *zap.Logger) *App {
	service := usecase.NewService(repo, photos, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireCustomer(r, handler.Customer)
	wireQuote(r, handler.Quote)
	wireBooking(r, handler.Booking)
	wireTruck(r, handler.Truck)
	wireFacility(r, handler.Facility)
	wireAdmin(r, handler.Admin)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
