package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "orders/internal/adapters/in/http"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/ports"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

// stubUoW is a permissive unit of work backed by mock repositories.
type stubUoW struct {
	orderRepo   *MockOrderRepository
	productRepo *MockProductRepository
}

func (u *stubUoW) Begin(context.Context) error    { return nil }
func (u *stubUoW) Commit(context.Context) error   { return nil }
func (u *stubUoW) Rollback(context.Context) error { return nil }

func (u *stubUoW) OrderRepository() ports.OrderRepository { return u.orderRepo }

func (u *stubUoW) ProductRepository() ports.ProductRepository { return u.productRepo }

type stubOrderUoWFactory struct{ uow *stubUoW }

func (f stubOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type stubUoWFactory struct{ uow *stubUoW }

func (f stubUoWFactory) Create() commands.UoW { return f.uow }

// newTestServer wires a Server with stubbed persistence. The read side
// handlers stay zero-valued; list and retrieve paths are covered by the
// query integration tests.
func newTestServer(uow *stubUoW) *echo.Echo {
	server := adapter.NewServer(
		commands.NewCreateOrderCommandHandler(stubUoWFactory{uow}),
		commands.NewUpdateOrderCommandHandler(stubOrderUoWFactory{uow}),
		commands.NewDeleteOrderCommandHandler(stubOrderUoWFactory{uow}),
		commands.NewAcceptOrderCommandHandler(stubOrderUoWFactory{uow}),
		commands.NewFailOrderCommandHandler(stubOrderUoWFactory{uow}),
		queries.GetOrderQueryHandler{},
		queries.GetOrdersQueryHandler{},
	)

	e := echo.New()
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")
	return e
}

func newStubUoW() *stubUoW {
	return &stubUoW{
		orderRepo:   new(MockOrderRepository),
		productRepo: new(MockProductRepository),
	}
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_ReturnsCreatedOrder(t *testing.T) {
	uow := newStubUoW()

	storedProduct, _ := product.RestoreProduct(4, "Dropbox")
	uow.productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).
		Return(storedProduct, nil).Once()

	// repository echoes back the aggregate with assigned identifiers
	amount := 10
	storedDetail, _ := order.RestoreDetail(1, &amount, nil, storedProduct)
	storedOrder, _ := order.RestoreOrder(5, "PR-123-321-123", order.New, time.Now().UTC(), []*order.Detail{storedDetail})
	uow.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(storedOrder, nil).Once()

	e := newTestServer(uow)
	rec := doRequest(e, http.MethodPost, "/api/v1/orders",
		`{"external_id":"PR-123-321-123","details":[{"amount":10,"product":{"name":"Dropbox"}}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(5), body["id"])
	assert.Equal(t, "new", body["status"])
	assert.Equal(t, "PR-123-321-123", body["external_id"])
	details := body["details"].([]any)
	require.Len(t, details, 1)
	detail := details[0].(map[string]any)
	assert.Equal(t, float64(10), detail["amount"])
	assert.Nil(t, detail["price"])
	assert.Equal(t, "Dropbox", detail["product"].(map[string]any)["name"])
}

func TestCreateOrder_MissingExternalID_ReturnsBadRequest(t *testing.T) {
	e := newTestServer(newStubUoW())

	rec := doRequest(e, http.MethodPost, "/api/v1/orders", `{"details":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrder_StatusLeftNew_ReturnsForbidden(t *testing.T) {
	uow := newStubUoW()
	stored, _ := order.RestoreOrder(1, "PR-123-321-123", order.Accepted, time.Now().UTC(), nil)
	uow.orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()

	e := newTestServer(uow)
	rec := doRequest(e, http.MethodPut, "/api/v1/orders/1",
		`{"external_id":"PR-124-444-444","status":"new"}`)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t,
		`{"error":"you cannot change data with status 'failed' or 'accepted'"}`,
		rec.Body.String())
	uow.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrder_FullUpdateWithoutExternalID_ReturnsBadRequest(t *testing.T) {
	e := newTestServer(newStubUoW())

	rec := doRequest(e, http.MethodPut, "/api/v1/orders/1", `{"status":"accepted"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchOrder_StatusOnly_UpdatesOrder(t *testing.T) {
	uow := newStubUoW()
	stored, _ := order.RestoreOrder(1, "PR-123-321-123", order.New, time.Now().UTC(), nil)
	uow.orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()
	uow.orderRepo.On("Update", mock.Anything, stored).Return(nil).Once()

	e := newTestServer(uow)
	rec := doRequest(e, http.MethodPatch, "/api/v1/orders/1", `{"status":"accepted"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "accepted", body["status"])
	assert.Equal(t, "PR-123-321-123", body["external_id"])
}

func TestDeleteOrder_Accepted_ReturnsForbidden(t *testing.T) {
	uow := newStubUoW()
	stored, _ := order.RestoreOrder(1, "PR-123-321-123", order.Accepted, time.Now().UTC(), nil)
	uow.orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()

	e := newTestServer(uow)
	rec := doRequest(e, http.MethodDelete, "/api/v1/orders/1", "")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t,
		`{"error":"you cannot delete data with status 'accepted'"}`,
		rec.Body.String())
	uow.orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteOrder_New_ReturnsSuccessConfirmation(t *testing.T) {
	uow := newStubUoW()
	stored, _ := order.RestoreOrder(1, "PR-123-321-123", order.New, time.Now().UTC(), nil)
	uow.orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()
	uow.orderRepo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	e := newTestServer(uow)
	rec := doRequest(e, http.MethodDelete, "/api/v1/orders/1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAcceptOrder_Failed_ReturnsAccepted(t *testing.T) {
	uow := newStubUoW()
	stored, _ := order.RestoreOrder(1, "PR-123-321-123", order.Failed, time.Now().UTC(), nil)
	uow.orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()
	uow.orderRepo.On("Update", mock.Anything, stored).Return(nil).Once()

	e := newTestServer(uow)
	rec := doRequest(e, http.MethodPost, "/api/v1/orders/1/accept", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "accepted", body["status"])
}

func TestAcceptOrder_New_ReturnsForbidden(t *testing.T) {
	uow := newStubUoW()
	stored, _ := order.RestoreOrder(1, "PR-123-321-123", order.New, time.Now().UTC(), nil)
	uow.orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()

	e := newTestServer(uow)
	rec := doRequest(e, http.MethodPost, "/api/v1/orders/1/accept", "")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t,
		`{"error":"you cannot accept the order with status 'new'"}`,
		rec.Body.String())
}

func TestFailOrder_Accepted_ReturnsFailed(t *testing.T) {
	uow := newStubUoW()
	stored, _ := order.RestoreOrder(1, "PR-123-321-123", order.Accepted, time.Now().UTC(), nil)
	uow.orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()
	uow.orderRepo.On("Update", mock.Anything, stored).Return(nil).Once()

	e := newTestServer(uow)
	rec := doRequest(e, http.MethodPost, "/api/v1/orders/1/fail", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed", body["status"])
}

func TestAcceptOrder_UnknownOrder_ReturnsNotFound(t *testing.T) {
	uow := newStubUoW()
	uow.orderRepo.On("Get", mock.Anything, int64(456)).
		Return(nil, errs.NewObjectNotFoundError("orderID", int64(456))).Once()

	e := newTestServer(uow)
	rec := doRequest(e, http.MethodPost, "/api/v1/orders/456/accept", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOrder_NonNumericID_ReturnsBadRequest(t *testing.T) {
	e := newTestServer(newStubUoW())

	rec := doRequest(e, http.MethodPut, "/api/v1/orders/abc",
		`{"external_id":"PR-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
