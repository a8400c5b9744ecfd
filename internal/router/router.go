// Package router wires handlers, auth middleware and rate limiting onto
// the echo instance. Route layout:
//
//	GET  /                                  liveness text
//	GET  /healthz                           health probe
//	POST /api/auth/register/customer        customer registration
//	POST /api/auth/register/admin           admin registration
//	GET  /api/auth/check-username           username availability
//	POST /api/auth/login                    role-discovery login
//	/api/admin/...                          admin bearer required
//	/api/customer/...                       customer bearer required
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/car-rental/internal/config"
	"github.com/iliyamo/car-rental/internal/handler"
	"github.com/iliyamo/car-rental/internal/middleware"
)

// Register mounts every route on e. rdb may be nil, in which case rate
// limiting and response caching silently pass through.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client, auth *handler.AuthHandler, admin *handler.AdminHandler, customer *handler.CustomerHandler) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)

	api := e.Group("/api", middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	a := api.Group("/auth")
	a.POST("/register/customer", auth.RegisterCustomer)
	a.POST("/register/admin", auth.RegisterAdmin)
	a.GET("/check-username", auth.CheckUsername)
	a.POST("/login", auth.Login)

	ad := api.Group("/admin", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole("admin"))
	ad.GET("/cars", admin.ListCars)
	ad.POST("/cars", admin.CreateCar)
	ad.DELETE("/cars/:id", admin.DeleteCar)
	ad.PUT("/cars/:id/status", admin.UpdateCarStatus)
	ad.GET("/branches", admin.ListBranches)
	ad.POST("/branches", admin.CreateBranch)
	ad.DELETE("/branches/:id", admin.DeleteBranch)
	ad.GET("/packages", admin.ListPackages)
	ad.POST("/packages", admin.CreatePackage)
	ad.DELETE("/packages/:id", admin.DeletePackage)
	ad.GET("/customers", admin.ListCustomers)
	ad.GET("/reservations", admin.ListReservations)
	ad.DELETE("/reservations/:id", admin.DeleteReservation)

	cu := api.Group("/customer", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole("customer"))
	browse := middleware.ResponseCache(config.LoadCacheConfig(), rdb)
	cu.GET("/cars", customer.BrowseCars, browse)
	cu.GET("/branches", customer.BrowseBranches, browse)
	cu.GET("/packages", customer.BrowsePackages, browse)
	cu.POST("/reserve", customer.Reserve)
	cu.GET("/reservations", customer.ListReservations)
	cu.GET("/reservations/:id", customer.GetReservation)
	cu.DELETE("/reservations/:id", customer.DeleteReservation)
}
