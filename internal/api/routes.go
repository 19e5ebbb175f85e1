package api

import (
	"github.com/bonesy512/situationship/internal/auth"
	"github.com/bonesy512/situationship/internal/user"
	"github.com/gorilla/mux"
)

// SetupRoutes wires the HTTP surface. The Stripe webhook and the health
// check sit outside the auth chain: Stripe signs its own requests, and
// health probes carry no bearer token.
func SetupRoutes(h *Handler, checkout *CheckoutHandler, jwtVerifier *auth.JWTVerifier, userRepo user.Repository, allowedOrigin string) *mux.Router {
	r := mux.NewRouter()

	r.Use(CORSMiddleware(allowedOrigin))
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	r.HandleFunc("/api/health", h.Health).Methods("GET")
	r.HandleFunc("/api/webhooks/stripe", checkout.HandleWebhook).Methods("POST")

	authMW := auth.NewMiddleware(jwtVerifier)
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(authMW.RequireAuth)
	protected.Use(user.UserMiddleware(userRepo))

	protected.HandleFunc("/check-in/submit", h.SubmitCheckIn).Methods("POST")
	protected.HandleFunc("/insights/generate", h.GenerateInsight).Methods("POST")
	protected.HandleFunc("/insights", h.ListInsights).Methods("GET")
	protected.HandleFunc("/user/stats", h.GetUserStats).Methods("GET")
	protected.HandleFunc("/user/tokens", h.GetUserTokens).Methods("GET")
	protected.HandleFunc("/decode", h.Decode).Methods("POST")
	protected.HandleFunc("/milestones", h.CreateMilestone).Methods("POST")
	protected.HandleFunc("/milestones", h.ListMilestones).Methods("GET")
	protected.HandleFunc("/milestones/{id}", h.DeleteMilestone).Methods("DELETE")
	protected.HandleFunc("/subscription/create", checkout.CreateSubscriptionCheckout).Methods("POST")
	protected.HandleFunc("/tokens/purchase", checkout.PurchaseTokens).Methods("POST")
	protected.HandleFunc("/subscription", checkout.GetSubscription).Methods("GET")

	return r
}
