// Package http exposes the status transition subsystem over an echo HTTP API.
// It translates requests into commands and queries, and maps the typed domain
// errors onto response codes: invalid transitions answer 400, permission
// failures 403, missing orders 404, and cancellation or concurrency conflicts 409.
package http

import (
	"errors"
	"net/http"
	"time"

	"ordermgmt/internal/core/application/usecases/commands"
	"ordermgmt/internal/core/application/usecases/queries"
	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"
	"ordermgmt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operator identity headers. The values are opaque strings; no authentication
// is performed here.
const (
	HeaderOperator = "X-Operator"
	HeaderRole     = "X-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getFlowHistoryHandler queries.GetStatusFlowHistoryQueryHandler

	metrics *TransitionMetrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getFlowHistoryHandler queries.GetStatusFlowHistoryQueryHandler,
	metrics *TransitionMetrics,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		changeStatusHandler:   changeStatusHandler,
		cancelOrderHandler:    cancelOrderHandler,
		getOrderHandler:       getOrderHandler,
		getFlowHistoryHandler: getFlowHistoryHandler,
		metrics:               metrics,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.GET("/orders/:orderID/status-flow", s.GetStatusFlowHistory)
}

// Error is the JSON shape of all error responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. ID is optional; a
// fresh one is generated when absent.
type CreateOrderRequest struct {
	ID          string `json:"id"`
	TotalAmount int64  `json:"totalAmount"`
}

// CreateOrderResponse is the body returned for a created order.
type CreateOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ChangeStatusRequest is the body of POST /api/v1/orders/:orderID/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Remark string `json:"remark"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:orderID/cancel.
// Remark is optional.
type CancelOrderRequest struct {
	Remark string `json:"remark"`
}

// TransitionResponse describes an executed status change.
type TransitionResponse struct {
	FromStatus  string `json:"fromStatus"`
	ToStatus    string `json:"toStatus"`
	Description string `json:"description"`
}

// OrderResponse is the display shape of one order.
type OrderResponse struct {
	ID                   string    `json:"id"`
	Status               string    `json:"status"`
	StatusDescription    string    `json:"statusDescription"`
	TotalAmount          int64     `json:"totalAmount"`
	AvailableTransitions []string  `json:"availableTransitions"`
	CanCancel            bool      `json:"canCancel"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// FlowRecordResponse is one entry of the status flow history.
type FlowRecordResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"orderId"`
	FromStatus      *string   `json:"fromStatus"`
	FromDescription string    `json:"fromDescription,omitempty"`
	ToStatus        string    `json:"toStatus"`
	ToDescription   string    `json:"toDescription"`
	Operator        string    `json:"operator"`
	Remark          string    `json:"remark"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateOrder handles POST /api/v1/orders - creates a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
		}
		orderID = parsed
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, req.TotalAmount, ctx.Request().Header.Get(HeaderOperator))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:     orderID.String(),
		Status: order.StatusDraft.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	transitions := make([]string, len(view.AvailableTransitions))
	for i, status := range view.AvailableTransitions {
		transitions[i] = status.String()
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:                   view.ID.String(),
		Status:               view.Status.String(),
		StatusDescription:    view.StatusDescription,
		TotalAmount:          view.TotalAmount,
		AvailableTransitions: transitions,
		CanCancel:            view.CanCancel,
		CreatedAt:            view.CreatedAt,
		UpdatedAt:            view.UpdatedAt,
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status - moves an
// order into the requested status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	targetStatus := order.Status(req.Status)
	role := order.RoleFromString(ctx.Request().Header.Get(HeaderRole))

	cmd, err := commands.NewChangeOrderStatusCommand(
		orderID, targetStatus, ctx.Request().Header.Get(HeaderOperator), role, req.Remark)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	result, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.metrics.RecordRejected(targetStatus, err)
		return domainErrorResponse(ctx, err)
	}
	s.metrics.RecordExecuted(result.ToStatus)

	return ctx.JSON(http.StatusOK, TransitionResponse{
		FromStatus:  result.FromStatus.String(),
		ToStatus:    result.ToStatus.String(),
		Description: result.Description,
	})
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	role := order.RoleFromString(ctx.Request().Header.Get(HeaderRole))

	cmd, err := commands.NewCancelOrderCommand(
		orderID, ctx.Request().Header.Get(HeaderOperator), role, req.Remark)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid cancellation request: "+err.Error())
	}

	result, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.metrics.RecordRejected(order.StatusCancelled, err)
		return domainErrorResponse(ctx, err)
	}
	s.metrics.RecordExecuted(result.ToStatus)

	return ctx.JSON(http.StatusOK, TransitionResponse{
		FromStatus:  result.FromStatus.String(),
		ToStatus:    result.ToStatus.String(),
		Description: result.Description,
	})
}

// GetStatusFlowHistory handles GET /api/v1/orders/:orderID/status-flow.
func (s *Server) GetStatusFlowHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	query, err := queries.NewGetStatusFlowHistoryQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	views, err := s.getFlowHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	response := make([]FlowRecordResponse, len(views))
	for i, view := range views {
		entry := FlowRecordResponse{
			ID:            view.ID.String(),
			OrderID:       view.OrderID.String(),
			ToStatus:      view.ToStatus.String(),
			ToDescription: view.ToDescription,
			Operator:      view.Operator,
			Remark:        view.Remark,
			CreatedAt:     view.CreatedAt,
		}
		if view.FromStatus != nil {
			from := view.FromStatus.String()
			entry.FromStatus = &from
			entry.FromDescription = view.FromDescription
		}
		response[i] = entry
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainErrorResponse maps a typed domain error to its response code.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrInvalidTransition):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrForbidden):
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, order.ErrNotCancellable):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrStaleTransition):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
