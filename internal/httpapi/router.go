package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/api"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/cart"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/session"
)

// NewRouter assembles the storefront's local HTTP surface.
func NewRouter(sessions *session.Store, engine *cart.Engine, client *api.Client, timeout time.Duration) http.Handler {
	sessionHandler := NewSessionHandler(sessions, timeout)
	cartHandler := NewCartHandler(engine, sessions, timeout)
	catalogHandler := NewCatalogHandler(client, timeout)
	ordersHandler := NewOrdersHandler(client, engine, sessions, timeout)
	accountHandler := NewAccountHandler(client, sessions, timeout)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Post("/login", sessionHandler.Login)
			r.Post("/register", sessionHandler.Register)
			r.Post("/logout", sessionHandler.Logout)
			r.Get("/me", sessionHandler.Me)
			r.Put("/profile", sessionHandler.UpdateProfile)
			r.Post("/change-password", sessionHandler.ChangePassword)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/reload", cartHandler.Reload)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productID}", cartHandler.UpdateQuantity)
			r.Delete("/items/{productID}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.Clear)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogHandler.List)
			r.Get("/categories", catalogHandler.Categories)
			r.Get("/brands", catalogHandler.Brands)
			r.Get("/{productID}", catalogHandler.Get)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", ordersHandler.Create)
			r.Get("/", ordersHandler.List)
		})

		r.Route("/account", func(r chi.Router) {
			r.Get("/wallet", accountHandler.Wallet)
			r.Get("/wallet/transactions", accountHandler.WalletTransactions)
			r.Get("/notifications", accountHandler.Notifications)
			r.Put("/notifications/mark-all-read", accountHandler.MarkAllNotificationsRead)
			r.Get("/support-tickets", accountHandler.SupportTickets)
			r.Post("/support-tickets", accountHandler.CreateSupportTicket)
		})
	})

	return r
}
