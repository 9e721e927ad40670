package http

import (
	"errors"
	"fmt"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler
	acceptOrderHandler commands.AcceptOrderCommandHandler
	failOrderHandler   commands.FailOrderCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	failOrderHandler commands.FailOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		acceptOrderHandler: acceptOrderHandler,
		failOrderHandler:   failOrderHandler,
		getOrderHandler:    getOrderHandler,
		getOrdersHandler:   getOrdersHandler,
	}
}

// GetOrders handles GET /api/v1/orders - retrieves a page of orders.
// The response carries the "Total objects" and "Content-Range" headers
// with 1-based item indices (0-0 for an empty page).
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.StatusFromString(string(*params.Status))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(params.ExternalId, status, params.Ordering, params.Offset, params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	start, end := 0, 0
	if len(page.Orders) > 0 {
		start = query.Offset() + 1
		end = query.Offset() + len(page.Orders)
	}

	header := ctx.Response().Header()
	header.Set("Total objects", fmt.Sprintf("%d", page.Total))
	header.Set("Content-Range", fmt.Sprintf("items %d-%d/%d", start, end, page.Total))

	response := make([]servers.Order, len(page.Orders))
	for i, resp := range page.Orders {
		response[i] = orderFromQuery(resp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
// A product row is created for every detail in the payload.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&newOrder); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	var details []commands.DetailPayload
	if newOrder.Details != nil {
		details = make([]commands.DetailPayload, 0, len(*newOrder.Details))
		for _, detail := range *newOrder.Details {
			payload := commands.DetailPayload{
				Amount:      detail.Amount,
				ProductName: detail.Product.Name,
			}

			if detail.Price != nil {
				price, err := kernel.NewPriceFromString(*detail.Price)
				if err != nil {
					return echo.NewHTTPError(http.StatusBadRequest, err.Error())
				}
				payload.Price = &price
			}

			details = append(details, payload)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.ExternalId, details)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/{id} - retrieves one order with details.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(resp))
}

// UpdateOrder handles PUT /api/v1/orders/{id} - full update of external_id
// and status. Rejected with 403 when the stored status has left "new".
func (s *Server) UpdateOrder(ctx echo.Context, id int64) error {
	return s.update(ctx, id, false)
}

// PatchOrder handles PATCH /api/v1/orders/{id} - partial update with the
// same status guard as UpdateOrder.
func (s *Server) PatchOrder(ctx echo.Context, id int64) error {
	return s.update(ctx, id, true)
}

func (s *Server) update(ctx echo.Context, id int64, partial bool) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	var status *order.Status
	if body.Status != nil {
		parsed, err := order.StatusFromString(string(*body.Status))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(id, body.ExternalId, status, partial)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{id} - deletes the order and
// its details. Accepted orders are protected and answered with 403.
func (s *Server) DeleteOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusNoContent, servers.Success{Success: "The data has deleted"})
}

// AcceptOrder handles POST /api/v1/orders/{id}/accept - moves a failed
// order to "accepted". Accepting an accepted order returns it unchanged.
func (s *Server) AcceptOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewAcceptOrderCommand(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(accepted))
}

// FailOrder handles POST /api/v1/orders/{id}/fail - moves an accepted
// order to "failed". Failing a failed order returns it unchanged.
func (s *Server) FailOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewFailOrderCommand(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	failed, err := s.failOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(failed))
}

// mapError translates use case errors to HTTP responses: unknown
// identifiers become 404, status guard violations 403 with an error body,
// validation failures 400.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case errors.Is(err, order.ErrUpdateNotAllowed),
		errors.Is(err, order.ErrDeleteNotAllowed),
		errors.Is(err, order.ErrAcceptNotAllowed),
		errors.Is(err, order.ErrFailNotAllowed):
		return ctx.JSON(http.StatusForbidden, servers.Error{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
}

// orderFromAggregate maps a domain aggregate to its wire representation.
func orderFromAggregate(aggregate *order.Order) servers.Order {
	details := make([]servers.OrderDetail, len(aggregate.Details()))
	for i, detail := range aggregate.Details() {
		var price *string
		if p := detail.Price(); p != nil {
			formatted := p.String()
			price = &formatted
		}

		details[i] = servers.OrderDetail{
			Id:     detail.ID(),
			Amount: detail.Amount(),
			Price:  price,
			Product: servers.Product{
				Id:   detail.Product().ID(),
				Name: detail.Product().Name(),
			},
		}
	}

	return servers.Order{
		Id:         aggregate.ID(),
		Status:     servers.OrderStatus(aggregate.Status().String()),
		CreatedAt:  aggregate.CreatedAt(),
		ExternalId: aggregate.ExternalID(),
		Details:    details,
	}
}

// orderFromQuery maps a read side response to its wire representation.
func orderFromQuery(resp queries.OrderResponse) servers.Order {
	details := make([]servers.OrderDetail, len(resp.Details))
	for i, detail := range resp.Details {
		var price *string
		if detail.Price != nil {
			formatted := detail.Price.String()
			price = &formatted
		}

		details[i] = servers.OrderDetail{
			Id:     detail.ID,
			Amount: detail.Amount,
			Price:  price,
			Product: servers.Product{
				Id:   detail.Product.ID,
				Name: detail.Product.Name,
			},
		}
	}

	return servers.Order{
		Id:         resp.ID,
		Status:     servers.OrderStatus(resp.Status.String()),
		CreatedAt:  resp.CreatedAt,
		ExternalId: resp.ExternalID,
		Details:    details,
	}
}
