package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/snstore/backend/internal/domain/model"
	"github.com/snstore/backend/internal/server/http/dto"
	"github.com/snstore/backend/internal/usecase"
)

// OrderHandler manages checkout and order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

func toOrderAddress(a dto.CheckoutAddress) model.OrderAddress {
	return model.OrderAddress{
		PostalCode: a.PostalCode,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID.String(),
			Title:     item.Title,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	return dto.OrderResponse{
		ID:            o.ID.String(),
		Number:        o.Number,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		Customer: dto.OrderCustomerResponse{
			Name:  o.Customer.Name,
			Email: o.Customer.Email,
			Phone: o.Customer.Phone,
		},
		ShippingAddress: dto.CheckoutAddress{
			PostalCode: o.ShippingAddress.PostalCode,
			Street:     o.ShippingAddress.Street,
			Number:     o.ShippingAddress.Number,
			Complement: o.ShippingAddress.Complement,
			District:   o.ShippingAddress.District,
			City:       o.ShippingAddress.City,
			State:      o.ShippingAddress.State,
		},
		Items:        items,
		Subtotal:     o.Subtotal.StringFixed(2),
		ShippingCost: o.ShippingCost.StringFixed(2),
		Total:        o.Total.StringFixed(2),
		CancelledAt:  o.CancelledAt,
		CancelReason: o.CancelReason,
		CreatedAt:    o.CreatedAt,
	}
}

// Checkout handles POST /api/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatusError(c, http.StatusBadRequest, "malformed payload")
		return
	}

	in := usecase.CheckoutInput{
		Items:           make([]usecase.CheckoutItem, 0, len(req.Items)),
		ShippingAddress: toOrderAddress(req.ShippingAddress),
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
	}
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": []string{"product_id"}})
			return
		}
		in.Items = append(in.Items, usecase.CheckoutItem{ProductID: productID, Quantity: item.Quantity})
	}

	order, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Cancel handles PUT /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeStatusError(c, http.StatusBadRequest, "malformed payload")
			return
		}
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), id, CurrentUserID(c), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Shipping handles GET /api/orders/shipping/:cep.
func (h *OrderHandler) Shipping(c *gin.Context) {
	options, err := h.facade.ShippingQuotes(c.Request.Context(), c.Param("cep"))
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.ShippingOptionResponse, 0, len(options))
	for _, opt := range options {
		response = append(response, dto.ShippingOptionResponse{
			Service: opt.Service,
			ETADays: opt.ETADays,
			Cost:    opt.Cost.StringFixed(2),
		})
	}

	c.JSON(http.StatusOK, response)
}
