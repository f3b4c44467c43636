// Package server VentureLink Core
//
// The VentureLink Core serves the engagement ledger (likes, crowns, shares,
// comments) and the identity-verification pipeline of the VentureLink network.
//
//     Schemes: https
//     BasePath: /api
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/venturelink/core/internal/entities"
	mm "github.com/venturelink/core/internal/middleware"
	"github.com/venturelink/core/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const countersCacheTTL = 10 * time.Second

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
	)

	srv := server{
		s: s,
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(mm.Auth)

		r.Post("/profiles", srv.createProfile)
		r.Get("/profiles/{profileID}", srv.getProfile)
		r.Post("/posts", srv.createPost)
		r.Get("/posts/{postID}", srv.getPost)

		r.Post("/likes/{targetType}/{targetID}", srv.toggle(entities.LikeInteraction, service.ToggleOn))
		r.Delete("/likes/{targetType}/{targetID}", srv.toggle(entities.LikeInteraction, service.ToggleOff))
		r.Get("/likes/{targetType}/{targetID}", srv.listInteractions(entities.LikeInteraction))

		r.Post("/crowns/{targetType}/{targetID}", srv.toggle(entities.CrownInteraction, service.ToggleOn))
		r.Delete("/crowns/{targetType}/{targetID}", srv.toggle(entities.CrownInteraction, service.ToggleOff))
		r.Get("/crowns/{targetType}/{targetID}", srv.listInteractions(entities.CrownInteraction))

		r.Post("/shares/{targetType}/{targetID}", srv.toggle(entities.ShareInteraction, service.ToggleOn))
		r.Delete("/shares/{targetType}/{targetID}", srv.toggle(entities.ShareInteraction, service.ToggleOff))

		r.Get("/{targetType}/{targetID}/engagement", mm.Cached(countersCacheTTL, srv.getEngagement))
		r.Get("/actors/{actorID}/interactions", srv.listActorInteractions)

		r.Post("/{targetType}/{targetID}/comments", srv.createComment)
		r.Get("/{targetType}/{targetID}/comments", srv.listComments)
		r.Delete("/comments/{commentID}", srv.deleteComment)

		r.Post("/verification", srv.submitVerification)
		r.Get("/verification", srv.getVerificationStatus)
		r.Post("/verification/documents", srv.attachDocument)

		r.Route("/admin", func(r chi.Router) {
			r.Use(mm.RequireAdmin)

			r.Put("/verification/{requestID}/review", srv.startReview)
			r.Put("/verification/{requestID}/approve", srv.approve)
			r.Put("/verification/{requestID}/reject", srv.reject)
			r.Get("/audit-logs", srv.listAuditLogs)
		})
	})
}
