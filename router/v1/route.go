package v1

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/syncads/paydetect/gateway"
	"github.com/syncads/paydetect/handler"
	"github.com/syncads/paydetect/infra/store"
)

// Deps carries the wired services the v1 API depends on. The caller builds
// them once and injects them here; no package-level state.
type Deps struct {
	Detector *gateway.Detector
	Store    *store.Store
	Validate *validator.Validate
}

// Routes registers all v1 API routes
func Routes(r chi.Router, deps Deps) {
	detectHandler := handler.NewDetectHandler(deps.Detector, deps.Validate)
	configHandler := handler.NewConfigHandler(deps.Store, deps.Detector, deps.Validate)

	// Detection routes
	r.Route("/detect", func(r chi.Router) {
		r.Post("/", detectHandler.AutoDetect)
		r.Post("/{gateway}", detectHandler.TestGateway)
	})

	r.Get("/gateways", detectHandler.ListGateways)
	r.Post("/credentials/validate", detectHandler.ValidateCredentials)

	// Tenant configuration routes
	r.Route("/config", func(r chi.Router) {
		r.Get("/", configHandler.ListConfigs)
		r.Put("/{gateway}", configHandler.SetConfig)
		r.Get("/{gateway}", configHandler.GetConfig)
		r.Delete("/{gateway}", configHandler.DeleteConfig)
	})
}
