package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/onetool/server/internal/apierr"
	"github.com/onetool/server/internal/requestdata"
	"github.com/onetool/server/internal/services"
	"github.com/onetool/server/internal/types"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (oh *OrderHandler) CreateOrders(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req types.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest(err))
		return
	}
	confirmation, err := oh.orderService.CreateOrders(c.Request.Context(), rd, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, confirmation)
}

func (oh *OrderHandler) GetOrders(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	orders, err := oh.orderService.GetOrders(c.Request.Context(), rd)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, orders)
}
