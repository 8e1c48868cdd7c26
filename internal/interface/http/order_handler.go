package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/internal/application"
	"github.com/musemarket/musemarket-api/internal/interface/middleware"
	"github.com/musemarket/musemarket-api/pkg/response"
)

type OrderHandler struct {
	Svc    OrderUseCase
	Logger *logrus.Logger
}

func NewOrderHandler(svc OrderUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type placeOrderRequest struct {
	ArtworkID       string `json:"artworkId" binding:"required"`
	BuyerName       string `json:"buyerName" binding:"required"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	ContactNumber   string `json:"contactNumber" binding:"required"`
	PaymentToken    string `json:"paymentToken" binding:"required"`
}

func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err)
		return
	}
	o, err := h.Svc.PlaceOrder(c.Request.Context(), middleware.UserID(c), application.PlaceOrderInput{
		ArtworkID:       req.ArtworkID,
		BuyerName:       req.BuyerName,
		ShippingAddress: req.ShippingAddress,
		ContactNumber:   req.ContactNumber,
		PaymentToken:    req.PaymentToken,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toOrderResponse(o), "order placed", nil)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	list, err := h.Svc.ListMyOrders(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]orderResponse, 0, len(list))
	for i := range list {
		out = append(out, toOrderResponse(&list[i]))
	}
	response.Success(c, http.StatusOK, out, "orders", gin.H{"count": len(out)})
}
