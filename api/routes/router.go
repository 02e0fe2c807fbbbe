package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/florawhisper/storefront-gateway/api/controllers"
	"github.com/florawhisper/storefront-gateway/api/middleware"
	"github.com/florawhisper/storefront-gateway/internal/catalog"
	"github.com/florawhisper/storefront-gateway/internal/checkout"
	"github.com/florawhisper/storefront-gateway/internal/orders"
	"github.com/florawhisper/storefront-gateway/internal/session"
	"github.com/florawhisper/storefront-gateway/pkg/config"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/logger"
	"github.com/florawhisper/storefront-gateway/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Sessions    *session.Manager
	SessionPing controllers.Pinger
	Upstream    *flora.Client
	Catalog     *catalog.Service
	Checkout    *checkout.Service
	Orders      *orders.Service
	HTTPMetrics *metrics.HTTPMetrics
	CartMetrics *metrics.CartMetrics
	MetricsPage http.Handler
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.Metrics(d.HTTPMetrics),
		middleware.CORS(d.Config.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.SessionPing, d.Upstream, d.Logger))
	})

	if d.MetricsPage != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsPage)
	} else {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.Login(d.Upstream, d.Sessions, d.Logger))
		r.Post("/register/{type}", controllers.Register(d.Upstream, d.Logger))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.Sessions, d.Logger))
			r.Post("/logout", controllers.Logout(d.Sessions, d.Logger))
			r.Put("/change-password", controllers.ChangePassword(d.Upstream, d.Logger))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(d.Sessions, d.Logger))

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.Profile(d.Upstream, d.Logger))
			r.Put("/{id}", controllers.ProfileUpdate(d.Upstream, d.Logger))
		})

		r.Route("/plants", func(r chi.Router) {
			r.Get("/", controllers.PlantsList(d.Catalog, d.Logger))
			r.Get("/search", controllers.PlantsSearch(d.Catalog, d.Logger))
			r.Get("/{plantId}", controllers.PlantGet(d.Catalog, d.Logger))
			r.Get("/category/{categoryId}", controllers.PlantsByCategory(d.Catalog, d.Logger))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(d.Logger, session.RoleAdmin))
				r.Post("/", controllers.PlantCreate(d.Catalog, d.Logger))
				r.Put("/{plantId}", controllers.PlantUpdate(d.Catalog, d.Logger))
				r.Delete("/{plantId}", controllers.PlantDelete(d.Catalog, d.Logger))
			})
		})
		r.Get("/categories", controllers.CategoriesList(d.Catalog, d.Logger))

		r.Route("/flower-meanings", func(r chi.Router) {
			r.Get("/", controllers.MeaningsList(d.Catalog, d.Logger))
			r.Get("/{meaningId}", controllers.MeaningGet(d.Catalog, d.Logger))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(d.Logger, session.RoleAdmin))
				r.Post("/", controllers.MeaningCreate(d.Catalog, d.Logger))
				r.Put("/{meaningId}", controllers.MeaningUpdate(d.Catalog, d.Logger))
				r.Delete("/{meaningId}", controllers.MeaningDelete(d.Catalog, d.Logger))
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(d.Sessions, d.Logger))
			r.Post("/items", controllers.CartAdd(d.Sessions, d.Catalog, d.CartMetrics, d.Logger))
			r.Put("/items/{plantId}", controllers.CartUpdateQuantity(d.Sessions, d.CartMetrics, d.Logger))
			r.Delete("/items/{plantId}", controllers.CartRemove(d.Sessions, d.CartMetrics, d.Logger))
			r.Delete("/", controllers.CartClear(d.Sessions, d.CartMetrics, d.Logger))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Use(middleware.RequireRole(d.Logger, session.RoleCustomer))
			r.Get("/quote", controllers.CheckoutQuote(d.Sessions, d.Logger))
			r.Post("/", controllers.CheckoutSubmit(d.Checkout, d.Sessions, d.Logger))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(d.Logger, session.RoleCustomer))
				r.Get("/history", controllers.OrdersHistory(d.Orders, d.Logger))
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(d.Logger, session.RoleAdmin))
				r.Get("/", controllers.OrdersList(d.Orders, d.Logger))
				r.Put("/{orderId}/status/{status}", controllers.OrderStatusUpdate(d.Orders, d.Logger))
			})
		})
	})

	return r
}
