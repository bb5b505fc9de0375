// Package http exposes the fulfillment use cases over an Echo HTTP server.
// The handlers are a thin boundary: they bind requests, build commands and
// queries, and translate errors to status codes. No business logic lives here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentCommandHandler
	deleteShipmentHandler commands.DeleteShipmentCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler

	// Query handlers
	getAllShipmentsHandler        queries.GetAllShipmentsQueryHandler
	getShipmentHandler            queries.GetShipmentQueryHandler
	findShipmentByTrackingHandler queries.FindShipmentByTrackingQueryHandler
	getAllOrdersHandler           queries.GetAllOrdersQueryHandler
	getOrderHandler               queries.GetOrderQueryHandler
	findOrderByNumberHandler      queries.FindOrderByNumberQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllShipmentsHandler queries.GetAllShipmentsQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	findShipmentByTrackingHandler queries.FindShipmentByTrackingQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	findOrderByNumberHandler queries.FindOrderByNumberQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:         createShipmentHandler,
		updateShipmentHandler:         updateShipmentHandler,
		deleteShipmentHandler:         deleteShipmentHandler,
		createOrderHandler:            createOrderHandler,
		updateOrderHandler:            updateOrderHandler,
		deleteOrderHandler:            deleteOrderHandler,
		getAllShipmentsHandler:        getAllShipmentsHandler,
		getShipmentHandler:            getShipmentHandler,
		findShipmentByTrackingHandler: findShipmentByTrackingHandler,
		getAllOrdersHandler:           getAllOrdersHandler,
		getOrderHandler:               getOrderHandler,
		findOrderByNumberHandler:      findOrderByNumberHandler,
	}
}

// RegisterRoutes wires the twelve operations onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/shipments", s.GetShipments)
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/tracking/:tracking", s.FindShipmentByTracking)
	api.GET("/shipments/:id", s.GetShipment)
	api.PUT("/shipments/:id", s.UpdateShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/number/:number", s.FindOrderByNumber)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// GetShipments handles GET /api/v1/shipments - retrieves all active shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	shipments, err := s.getAllShipmentsHandler.Handle(ctx.Request().Context(), queries.NewGetAllShipmentsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, m := range shipments {
		response[i] = shipmentResponseFromReadModel(m)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id - retrieves one shipment.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromReadModel(result))
}

// FindShipmentByTracking handles GET /api/v1/shipments/tracking/:tracking.
func (s *Server) FindShipmentByTracking(ctx echo.Context) error {
	query, err := queries.NewFindShipmentByTrackingQuery(ctx.Param("tracking"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.findShipmentByTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromReadModel(result))
}

// CreateShipment handles POST /api/v1/shipments - creates a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req ShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateShipmentCommand(
		req.Tracking, req.Carrier, req.ServiceLevel, req.Cost, req.DispatchedOn, req.EstimatedOn, req.Status,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	id, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.Int64()})
}

// UpdateShipment handles PUT /api/v1/shipments/:id - updates a shipment.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req ShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		id, req.Tracking, req.Carrier, req.ServiceLevel, req.Cost, req.DispatchedOn, req.EstimatedOn, req.Status,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id - soft-deletes a shipment.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves all active orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, m := range orders {
		response[i] = orderResponseFromReadModel(m)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(result))
}

// FindOrderByNumber handles GET /api/v1/orders/number/:number.
func (s *Server) FindOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewFindOrderByNumberQuery(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.findOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(result))
}

// CreateOrder handles POST /api/v1/orders - the coordinated
// create-order-with-shipment operation.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.Shipment == nil {
		return badRequest(ctx, "Shipment is required")
	}

	shipmentCmd, err := commands.NewCreateShipmentCommand(
		req.Shipment.Tracking,
		req.Shipment.Carrier,
		req.Shipment.ServiceLevel,
		req.Shipment.Cost,
		req.Shipment.DispatchedOn,
		req.Shipment.EstimatedOn,
		req.Shipment.Status,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.Number, req.Date, req.CustomerName, req.Total, req.Status, shipmentCmd,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.Int64()})
}

// UpdateOrder handles PUT /api/v1/orders/:id - updates an order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.Number, req.Date, req.CustomerName, req.Total, req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - soft-deletes an order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return kernel.ZeroID, err
	}
	return kernel.NewID(raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorJSON maps use-case errors onto HTTP statuses: missing objects are 404,
// natural-key collisions and blocked deletions are 409, validation failures
// are 400, anything else from the store is 500. A transaction error wrapping a
// classified cause takes the cause's status.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists), errors.Is(err, errs.ErrObjectStillReferenced):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
