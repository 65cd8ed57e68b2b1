package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zyreejago/hidroponik/api/controllers"
	"github.com/zyreejago/hidroponik/api/middleware"
	"github.com/zyreejago/hidroponik/internal/admin"
	"github.com/zyreejago/hidroponik/internal/cart"
	checkoutsvc "github.com/zyreejago/hidroponik/internal/checkout"
	"github.com/zyreejago/hidroponik/internal/inquiries"
	"github.com/zyreejago/hidroponik/internal/orders"
	"github.com/zyreejago/hidroponik/internal/shipping"
	"github.com/zyreejago/hidroponik/internal/wallets"
	"github.com/zyreejago/hidroponik/pkg/auth/session"
	"github.com/zyreejago/hidroponik/pkg/config"
	"github.com/zyreejago/hidroponik/pkg/logger"
	"github.com/zyreejago/hidroponik/pkg/metrics"
)

// Dependencies carries everything the router wires into its handlers.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	Registry *prometheus.Registry
	HTTPMet  *metrics.HTTPMetrics

	DB    controllers.Pinger
	Redis controllers.Pinger
	GCS   controllers.Pinger

	Sessions session.AccessSessionChecker

	Admin     admin.Service
	Cart      cart.Service
	Shipping  shipping.Service
	Checkout  checkoutsvc.Service
	Orders    orders.Service
	Wallets   wallets.Service
	Inquiries inquiries.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMet),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": deps.DB,
			"redis":    deps.Redis,
			"gcs":      deps.GCS,
		}))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList())
			r.Get("/{productId}", controllers.ProductDetail(logg))
		})

		r.Route("/shipping", func(r chi.Router) {
			r.Get("/regions", controllers.ShippingRegions())
			r.Get("/regions/{provinceId}/subregions", controllers.ShippingSubregions(logg))
			r.Post("/cost", controllers.ShippingCost(deps.Shipping, logg))
		})

		r.Get("/payment-methods", controllers.PaymentMethodList(deps.Wallets, logg))
		r.Post("/inquiries", controllers.InquiryCreate(deps.Inquiries, logg))
		r.Get("/orders/track/{trackingCode}", controllers.OrderTrack(deps.Orders, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(deps.Cart, logg))
				r.Post("/items", controllers.CartAddItem(deps.Cart, logg))
				r.Patch("/items/{productId}", controllers.CartUpdateItem(deps.Cart, logg))
				r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.Cart, logg))
				r.Delete("/", controllers.CartClear(deps.Cart, logg))
			})

			r.Post("/checkout", controllers.Checkout(deps.Checkout, cfg.Checkout, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if !cfg.App.IsProd() {
				r.Post("/setup", controllers.AdminAuthSetup(deps.Admin, logg))
			}
			r.Post("/login", controllers.AdminAuthLogin(deps.Admin, logg))
			r.Post("/refresh", controllers.AdminAuthRefresh(deps.Admin, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, deps.Sessions, logg))

			r.Post("/auth/logout", controllers.AdminAuthLogout(deps.Admin, logg))
			r.Get("/auth/me", controllers.AdminAuthMe(logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminOrderList(deps.Orders, logg))
				r.Get("/{orderId}", controllers.AdminOrderDetail(deps.Orders, logg))
				r.Patch("/{orderId}/status", controllers.AdminOrderUpdateStatus(deps.Orders, logg))
			})

			r.Route("/inquiries", func(r chi.Router) {
				r.Get("/", controllers.AdminInquiryList(deps.Inquiries, logg))
				r.Patch("/{inquiryId}/status", controllers.AdminInquiryUpdateStatus(deps.Inquiries, logg))
			})

			r.Route("/e-wallets", func(r chi.Router) {
				r.Get("/", controllers.AdminWalletList(deps.Wallets, logg))
				r.Post("/", controllers.AdminWalletCreate(deps.Wallets, logg))
				r.Put("/{walletId}", controllers.AdminWalletUpdate(deps.Wallets, logg))
				r.Delete("/{walletId}", controllers.AdminWalletDelete(deps.Wallets, logg))
				r.Post("/{walletId}/activate", controllers.AdminWalletSetActive(deps.Wallets, true, logg))
				r.Post("/{walletId}/deactivate", controllers.AdminWalletSetActive(deps.Wallets, false, logg))
			})
		})
	})

	return r
}
