package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/config"
	"github.com/GuimaraesZ/workshop/internal/auth"
	"github.com/GuimaraesZ/workshop/internal/categories"
	"github.com/GuimaraesZ/workshop/internal/orders"
	"github.com/GuimaraesZ/workshop/internal/products"
	"github.com/GuimaraesZ/workshop/internal/users"
	"github.com/GuimaraesZ/workshop/internal/webserver"
)

// Handlers binds the HTTP surface to explicitly-wired services. No global
// singletons: everything is passed in at construction.
type Handlers struct {
	cfg        *config.AppConfig
	db         *gorm.DB
	users      *users.Service
	products   *products.Service
	categories *categories.Service
	orders     *orders.Service
	auth       *auth.Service
	startedAt  time.Time
}

func NewHandlers(
	cfg *config.AppConfig,
	db *gorm.DB,
	userSvc *users.Service,
	productSvc *products.Service,
	categorySvc *categories.Service,
	orderSvc *orders.Service,
	authSvc *auth.Service,
) *Handlers {
	return &Handlers{
		cfg:        cfg,
		db:         db,
		users:      userSvc,
		products:   productSvc,
		categories: categorySvc,
		orders:     orderSvc,
		auth:       authSvc,
		startedAt:  time.Now(),
	}
}

// Register attaches every route to the webserver.
func (h *Handlers) Register(ws *webserver.WebServer) {
	// Users
	ws.GET("/users", h.listUsers)
	ws.GET("/users/:id", h.getUser)
	ws.POST("/users", h.createUser)
	ws.PUT("/users/:id", h.updateUser)
	ws.DELETE("/users/:id", h.deleteUser)
	ws.POST("/users/:id/change-password", h.changePassword)
	ws.POST("/users/:id/upload-profile-image", h.uploadProfileImage)

	// Products
	ws.GET("/products", h.listProducts)
	ws.GET("/products/:id", h.getProduct)
	ws.POST("/products", h.createProduct)
	ws.PUT("/products/:id", h.updateProduct)
	ws.DELETE("/products/:id", h.deleteProduct)
	ws.POST("/manager/products/:id/upload-image", h.uploadProductImage)

	// Categories (read-only)
	ws.GET("/categories", h.listCategories)
	ws.GET("/categories/:id", h.getCategory)
	ws.GET("/categories/:id/products", h.listCategoryProducts)

	// Orders
	ws.GET("/orders", h.listOrders)
	ws.GET("/orders/:id", h.getOrder)
	ws.POST("/orders", h.createOrder)
	ws.DELETE("/orders/:id", h.deleteOrder)
	ws.PUT("/orders/:id/payment", h.payOrder)

	// Auth
	ws.POST("/auth/login", h.login)
	ws.POST("/auth/signup", h.signup)

	// Manager / system
	ws.GET("/manager/dashboard", h.dashboard)
	ws.GET("/system/info", h.systemInfo)
}
