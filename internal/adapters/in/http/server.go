// Package http exposes the order use cases over a REST API built on Echo.
// Handlers translate requests into commands and queries and map domain
// errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	addItemHandler       commands.AddItemCommandHandler
	removeItemHandler    commands.RemoveItemCommandHandler
	confirmOrderHandler  commands.ConfirmOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		addItemHandler:           addItemHandler,
		removeItemHandler:        removeItemHandler,
		confirmOrderHandler:      confirmOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		markOrderPaidHandler:     markOrderPaidHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
	}
}

// RegisterRoutes attaches every order endpoint to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/customers/:customerId/orders", s.GetCustomerOrders)
	api.POST("/orders/:orderId/items", s.AddItem)
	api.DELETE("/orders/:orderId/items/:productId", s.RemoveItem)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/pay", s.MarkOrderPaid)
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary		Open a new order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order data"
//	@Success		201		{object}	CreateOrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := order.CustomerIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
//
//	@Summary		Get one order with its items
//	@Tags			orders
//	@Produce		json
//	@Param			orderId	path		string	true	"Order id"
//	@Success		200		{object}	OrderResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := order.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
//
//	@Summary		List all orders of a customer
//	@Tags			orders
//	@Produce		json
//	@Param			customerId	path	string	true	"Customer id"
//	@Success		200			{array}	OrderResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/customers/{customerId}/orders [get]
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := order.CustomerIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	responses, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	orders := make([]OrderResponse, len(responses))
	for i, response := range responses {
		orders[i] = toOrderResponse(response)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// AddItem handles POST /api/v1/orders/:orderId/items.
//
//	@Summary		Add a product line to a pending order
//	@Tags			orders
//	@Accept			json
//	@Param			orderId	path	string			true	"Order id"
//	@Param			request	body	AddItemRequest	true	"Item data"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{orderId}/items [post]
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := order.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request AddItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := order.ProductIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	unitPrice, err := kernel.NewMoneyFromString(request.UnitPrice, request.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid unit price: "+err.Error())
	}

	cmd, err := commands.NewAddItemCommand(orderID, productID, request.Quantity, unitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/:orderId/items/:productId.
//
//	@Summary		Remove a product line from a pending order
//	@Tags			orders
//	@Param			orderId		path	string	true	"Order id"
//	@Param			productId	path	string	true	"Product id"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{orderId}/items/{productId} [delete]
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := order.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	productID, err := order.ProductIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, productID)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
//
//	@Summary		Confirm a pending order
//	@Tags			orders
//	@Param			orderId	path	string	true	"Order id"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{orderId}/confirm [post]
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := order.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
//
//	@Summary		Cancel an order that has not shipped
//	@Tags			orders
//	@Param			orderId	path	string	true	"Order id"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := order.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/:orderId/pay.
//
//	@Summary		Record payment for a confirmed order
//	@Tags			orders
//	@Param			orderId	path	string	true	"Order id"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{orderId}/pay [post]
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := order.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toOrderResponse(response queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Currency:  item.Currency,
		}
	}

	return OrderResponse{
		ID:            response.ID.String(),
		CustomerID:    response.CustomerID.String(),
		Status:        response.Status,
		CreatedAt:     response.CreatedAt,
		Items:         items,
		TotalAmount:   response.TotalAmount.String(),
		TotalCurrency: response.TotalCurrency,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain errors to HTTP status codes: missing orders to
// 404, state machine violations to 409, validation failures to 400 and
// everything else to 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrOrderAlreadyConfirmed),
		errors.Is(err, order.ErrOrderNotConfirmed),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrOrderCannotBeCancelled):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, kernel.ErrCurrencyMismatch),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
