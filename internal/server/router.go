// Package server exposes the HTTP API: auth, groups, orders and
// settlements, plus health and metrics endpoints.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/metonline/hesap-paylas/internal/auth"
	"github.com/metonline/hesap-paylas/internal/middleware"
	"github.com/metonline/hesap-paylas/internal/service"
)

// Server bundles the services the handlers depend on.
type Server struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         auth.UserStorage
	groups        *service.GroupService
	orders        *service.OrderService
	settlements   *service.SettlementService
}

// New creates a Server with the given collaborators.
func New(
	authenticator auth.Authenticator,
	jwtManager *auth.JWTManager,
	users auth.UserStorage,
	groups *service.GroupService,
	orders *service.OrderService,
	settlements *service.SettlementService,
) *Server {
	return &Server{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		groups:        groups,
		orders:        orders,
		settlements:   settlements,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(cors.Default())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/api/auth/signup", s.signup)
	r.POST("/api/auth/login", s.login)

	api := r.Group("/api", middleware.RequireAuth(s.jwtManager))
	{
		api.GET("/me", s.profile)

		api.POST("/groups", s.createGroup)
		api.GET("/groups/:id", s.getGroup)
		api.POST("/groups/join", s.joinGroup)

		api.POST("/orders", s.createOrder)
		api.GET("/orders/:id", s.getOrder)
		api.POST("/orders/:id/settle", s.settleOrder)
		api.GET("/settlements/:id", s.getSettlement)
	}

	return r
}
