package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"cake_orders/internal/model"
	"cake_orders/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order related requests and the admin page
type OrderHandler struct {
	service      service.OrderService
	templatesDir string
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(s service.OrderService, templatesDir string) *OrderHandler {
	return &OrderHandler{service: s, templatesDir: templatesDir}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating order: %v", err) // Log detailed error
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Thank you for your order, %s! We will contact you at %s.", order.Name, order.Phone),
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("Error getting orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// AdminPage serves the admin view to authenticated admins only
func (h *OrderHandler) AdminPage(c *gin.Context) {
	c.File(filepath.Join(h.templatesDir, "admin.html"))
}

// RegisterOrderRoutes registers order routes behind the auth middleware and
// the admin page behind the role gate. Listing stays open to any
// authenticated role.
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.POST("/order", authMW, h.CreateOrder)
	rg.GET("/orders", authMW, h.ListOrders)
	rg.GET("/templates/admin.html", authMW, adminMW, h.AdminPage)
}
