package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	RateLimitRPS   float64
	RateLimitBurst int
	// AllowOrigins enables CORS for browser clients; empty disables it
	AllowOrigins []string
}

// NewRouter builds the gin engine serving the storefront API.
func NewRouter(h *Handler, logger *zap.Logger, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	if len(opts.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.AllowOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}
	if opts.RateLimitRPS > 0 {
		r.Use(NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, 5*time.Minute).Middleware())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/products/category/:category", h.ListProducts)
		api.GET("/categories", h.ListCategories)

		sessions := api.Group("/sessions")
		sessions.POST("", h.OpenSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.CloseSession)
		sessions.POST("/:id/login", h.Login)
		sessions.POST("/:id/logout", h.Logout)
		sessions.GET("/:id/cart", h.GetCart)
		sessions.DELETE("/:id/cart", h.ClearCart)
		sessions.POST("/:id/cart/items", h.AddItem)
		sessions.PUT("/:id/cart/items/:productId", h.UpdateItem)
		sessions.DELETE("/:id/cart/items/:productId", h.RemoveItem)

		admin := api.Group("/admin")
		admin.Use(RequireAdmin())
		admin.GET("/products", h.AdminListProducts)
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
	}

	return r
}
