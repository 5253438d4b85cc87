// Package http exposes the order commands and the tracking query over REST.
//
// The swagger document in the docs package is the contract: it is served under
// /swagger/ and every /api/v1 request is validated against it before a handler runs.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	_ "ordering/internal/adapters/in/http/docs" // swagger document registration
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// Use case contracts consumed by the server.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (order.TrackingID, error)
	}

	PayOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PayOrderCommand) error
	}

	ApproveOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error
	}

	InitCancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.InitCancelOrderCommand) error
	}

	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}

	GetOrderStatusHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatusQuery) (queries.GetOrderStatusQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder     CreateOrderHandler
	PayOrder        PayOrderHandler
	ApproveOrder    ApproveOrderHandler
	InitCancelOrder InitCancelOrderHandler
	CancelOrder     CancelOrderHandler
	GetOrderStatus  GetOrderStatusHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// NewEcho builds the router: health, metrics, swagger UI and the validated API group.
func NewEcho(server *Server, doc *openapi3.T, metrics *Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath, RequestValidator(doc, BasePath))
	api.POST("/orders", server.CreateOrder)
	api.GET("/orders/:trackingId", server.GetOrderStatus)
	api.POST("/orders/:orderId/pay", server.PayOrder)
	api.POST("/orders/:orderId/approve", server.ApproveOrder)
	api.POST("/orders/:orderId/init-cancel", server.InitCancelOrder)
	api.POST("/orders/:orderId/cancel", server.CancelOrder)

	return e
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary	Place an order
//	@ID			createOrder
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order to place"
//	@Success	201		{object}	CreateOrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := toCreateOrderCommand(req)
	if err != nil {
		return s.respondError(c, err)
	}

	trackingID, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{
		TrackingID: trackingID.String(),
		Status:     order.Pending.String(),
	})
}

// GetOrderStatus handles GET /api/v1/orders/{trackingId}.
//
//	@Summary	Track an order
//	@ID			getOrderStatus
//	@Tags		orders
//	@Produce	json
//	@Param		trackingId	path		string	true	"Tracking ID"	format(uuid)
//	@Success	200			{object}	OrderStatusResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/orders/{trackingId} [get]
func (s *Server) GetOrderStatus(c echo.Context) error {
	trackingID, err := pathID(c, "trackingId", order.TrackingIDFromUUID)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetOrderStatusQuery(trackingID)
	if err != nil {
		return s.respondError(c, err)
	}

	response, err := s.handlers.GetOrderStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	messages := response.FailureMessages
	if messages == nil {
		messages = []string{}
	}

	return c.JSON(http.StatusOK, OrderStatusResponse{
		TrackingID:      response.TrackingID.String(),
		Status:          response.Status.String(),
		FailureMessages: messages,
	})
}

// PayOrder handles POST /api/v1/orders/{orderId}/pay.
//
//	@Summary	Mark a pending order as paid
//	@ID			payOrder
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	string	true	"Order ID"	format(uuid)
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/orders/{orderId}/pay [post]
func (s *Server) PayOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId", kernel.OrderIDFromUUID)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.handlers.PayOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve.
//
//	@Summary	Approve a paid order
//	@ID			approveOrder
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	string	true	"Order ID"	format(uuid)
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/orders/{orderId}/approve [post]
func (s *Server) ApproveOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId", kernel.OrderIDFromUUID)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.handlers.ApproveOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// InitCancelOrder handles POST /api/v1/orders/{orderId}/init-cancel.
//
//	@Summary	Start cancelling a paid order
//	@ID			initCancelOrder
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId		path	string					true	"Order ID"	format(uuid)
//	@Param		messages	body	FailureMessagesRequest	false	"Failure messages"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/orders/{orderId}/init-cancel [post]
func (s *Server) InitCancelOrder(c echo.Context) error {
	orderID, messages, err := bindCancellation(c)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewInitCancelOrderCommand(orderID, messages)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.handlers.InitCancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
//
//	@Summary	Cancel a pending or cancelling order
//	@ID			cancelOrder
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId		path	string					true	"Order ID"	format(uuid)
//	@Param		messages	body	FailureMessagesRequest	false	"Failure messages"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, messages, err := bindCancellation(c)
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, messages)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindCancellation(c echo.Context) (kernel.OrderID, []string, error) {
	orderID, err := pathID(c, "orderId", kernel.OrderIDFromUUID)
	if err != nil {
		return kernel.OrderID{}, nil, err
	}

	var req FailureMessagesRequest
	if c.Request().ContentLength != 0 {
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return kernel.OrderID{}, nil, errs.NewValueIsInvalidErrorWithCause("body", err)
		}
	}

	return orderID, req.FailureMessages, nil
}

// pathID binds a simple-style uuid path parameter and converts it to a typed id.
func pathID[ID any](c echo.Context, name string, build func(kernel.UUID) (ID, error)) (ID, error) {
	var zero ID

	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return zero, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return typedID(raw, build)
}

func typedID[ID any](raw uuid.UUID, build func(kernel.UUID) (ID, error)) (ID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		var zero ID
		return zero, err
	}
	return build(id)
}

func toCreateOrderCommand(req CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customerID, err := typedID(req.CustomerID, kernel.CustomerIDFromUUID)
	if err != nil {
		return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	restaurantID, err := typedID(req.RestaurantID, kernel.RestaurantIDFromUUID)
	if err != nil {
		return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("restaurantId", err)
	}
	price, err := kernel.ParseMoney(req.Price)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for i, item := range req.Items {
		productID, err := typedID(item.ProductID, restaurant.ProductIDFromUUID)
		if err != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].productId", i), err)
		}
		itemPrice, err := kernel.ParseMoney(item.Price)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}

		var subTotal kernel.Money
		if item.SubTotal != "" {
			if subTotal, err = kernel.ParseMoney(item.SubTotal); err != nil {
				return commands.CreateOrderCommand{}, err
			}
		}

		items = append(items, commands.CreateOrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     itemPrice,
			SubTotal:  subTotal,
		})
	}

	return commands.NewCreateOrderCommand(
		customerID,
		restaurantID,
		commands.CreateOrderAddress{
			Street:     req.Address.Street,
			PostalCode: req.Address.PostalCode,
			City:       req.Address.City,
		},
		price,
		items,
	)
}
