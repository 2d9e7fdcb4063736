package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/memory"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type uowFactory func() commands.OrderUoW

func (f uowFactory) Create() commands.OrderUoW {
	return f()
}

// ServerTestSuite drives the HTTP API end to end against the in-memory store.
type ServerTestSuite struct {
	suite.Suite
	router *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	logger := slog.New(slog.DiscardHandler)
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store, kafka.NewNoopPublisher(), logger)
	var uows commands.OrderUoWFactory = uowFactory(func() commands.OrderUoW {
		return factory.Create()
	})
	reader := memory.NewOrderRepository(store)
	ids := kernel.NewUUIDGenerator()

	server := httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:        commands.NewPlaceOrderCommandHandler(uows, ids),
		CancelOrder:       commands.NewCancelOrderCommandHandler(uows),
		AddOrderLine:      commands.NewAddOrderLineCommandHandler(uows, ids),
		UpdateOrderLine:   commands.NewUpdateOrderLineCommandHandler(uows),
		RemoveOrderLine:   commands.NewRemoveOrderLineCommandHandler(uows),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(uows),
		GetOrder:          queries.NewGetOrderQueryHandler(reader),
		ListOrders:        queries.NewListOrdersQueryHandler(reader),
	}, logger)

	router, err := httpadapter.NewRouter(server, httpadapter.NewMetrics(prometheus.NewRegistry()), logger)
	suite.Require().NoError(err)
	suite.router = router
}

func (suite *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) placeOrder() string {
	rec := suite.do(http.MethodPost, "/api/v1/orders",
		`{"orderLines":[{"productId":"PROD-001","quantity":2,"unitPrice":49.99},{"productId":"PROD-002","quantity":1,"unitPrice":29.99}]}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var resp servers.PlaceOrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("Order placed successfully", resp.Message)
	suite.Require().NotEmpty(resp.Id)
	return resp.Id
}

func (suite *ServerTestSuite) getOrder(id string) servers.Order {
	rec := suite.do(http.MethodGet, "/api/v1/orders/"+id, "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var o servers.Order
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &o))
	return o
}

func (suite *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) servers.Error {
	var e servers.Error
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func (suite *ServerTestSuite) TestPlaceAndGetOrder() {
	id := suite.placeOrder()

	o := suite.getOrder(id)

	suite.Equal(id, o.Identifier)
	suite.Equal("PENDING", o.Status)
	suite.InDelta(129.97, o.TotalAmount, 0.0001)
	suite.Require().Len(o.OrderLines, 2)
	suite.Equal("PROD-001", o.OrderLines[0].ProductId)
	suite.InDelta(99.98, o.OrderLines[0].TotalAmount, 0.0001)
}

func (suite *ServerTestSuite) TestPlaceOrder_NoLines_Returns400() {
	rec := suite.do(http.MethodPost, "/api/v1/orders", `{"orderLines":[]}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	e := suite.decodeError(rec)
	suite.Equal(http.StatusBadRequest, e.Code)
	suite.Contains(e.Message, "at least one order line")
}

func (suite *ServerTestSuite) TestPlaceOrder_InvalidQuantity_Returns400() {
	rec := suite.do(http.MethodPost, "/api/v1/orders",
		`{"orderLines":[{"productId":"PROD-001","quantity":0,"unitPrice":10}]}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.decodeError(rec).Message, "quantity")
}

func (suite *ServerTestSuite) TestPlaceOrder_SchemaViolation_Returns400() {
	rec := suite.do(http.MethodPost, "/api/v1/orders", `{"orderLines":[{"productId":"PROD-001","quantity":"two","unitPrice":10}]}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.decodeError(rec).Message, "Invalid request")
}

func (suite *ServerTestSuite) TestListOrders() {
	rec := suite.do(http.MethodGet, "/api/v1/orders", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"orders":[]}`, rec.Body.String())

	first := suite.placeOrder()
	second := suite.placeOrder()

	rec = suite.do(http.MethodGet, "/api/v1/orders", "")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var list servers.OrderList
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	suite.Require().Len(list.Orders, 2)
	suite.Equal(first, list.Orders[0].Identifier)
	suite.Equal(second, list.Orders[1].Identifier)
}

func (suite *ServerTestSuite) TestGetOrder_Unknown_Returns404() {
	rec := suite.do(http.MethodGet, "/api/v1/orders/missing", "")

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal(http.StatusNotFound, suite.decodeError(rec).Code)
}

func (suite *ServerTestSuite) TestCancelOrder() {
	id := suite.placeOrder()

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+id+"/cancel", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"message":"Order canceled successfully"}`, rec.Body.String())
	suite.Equal("CANCELED", suite.getOrder(id).Status)
}

func (suite *ServerTestSuite) TestCancelOrder_Paid_Returns400() {
	id := suite.placeOrder()
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPut, "/api/v1/orders/"+id+"/status", `{"status":"PAID"}`).Code)

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+id+"/cancel", "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("PAID", suite.getOrder(id).Status)
}

func (suite *ServerTestSuite) TestCancelOrder_Unknown_Returns404() {
	rec := suite.do(http.MethodPost, "/api/v1/orders/missing/cancel", "")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestUpdateOrderStatus() {
	id := suite.placeOrder()

	rec := suite.do(http.MethodPut, "/api/v1/orders/"+id+"/status", `{"status":"shipped"}`)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal("SHIPPED", suite.getOrder(id).Status)

	rec = suite.do(http.MethodPut, "/api/v1/orders/"+id+"/status", `{"status":"PAID"}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.decodeError(rec).Message, "cannot transition from SHIPPED to PAID")
}

func (suite *ServerTestSuite) TestUpdateOrderStatus_UnknownStatus_Returns400() {
	id := suite.placeOrder()

	rec := suite.do(http.MethodPut, "/api/v1/orders/"+id+"/status", `{"status":"LOST"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestAddOrderLine_MergesSameProduct() {
	id := suite.placeOrder()

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+id+"/lines", `{"productId":"PROD-001","quantity":3,"unitPrice":10}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.JSONEq(`{"message":"Order line added successfully"}`, rec.Body.String())

	o := suite.getOrder(id)
	suite.Require().Len(o.OrderLines, 2)
	suite.Equal(5, o.OrderLines[0].Quantity)
	suite.InDelta(49.99, o.OrderLines[0].UnitPrice, 0.0001)

	rec = suite.do(http.MethodPost, "/api/v1/orders/"+id+"/lines", `{"productId":"PROD-003","quantity":1,"unitPrice":5}`)
	suite.Require().Equal(http.StatusCreated, rec.Code)
	suite.Len(suite.getOrder(id).OrderLines, 3)
}

func (suite *ServerTestSuite) TestAddOrderLine_ShippedOrder_Returns400() {
	id := suite.placeOrder()
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPut, "/api/v1/orders/"+id+"/status", `{"status":"SHIPPED"}`).Code)

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+id+"/lines", `{"productId":"PROD-003","quantity":1,"unitPrice":5}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestUpdateOrderLine() {
	id := suite.placeOrder()
	lineID := suite.getOrder(id).OrderLines[0].Identifier

	rec := suite.do(http.MethodPut, "/api/v1/orders/"+id+"/lines/"+lineID, `{"quantity":10}`)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	o := suite.getOrder(id)
	suite.Equal(10, o.OrderLines[0].Quantity)
	suite.InDelta(529.89, o.TotalAmount, 0.0001)
}

func (suite *ServerTestSuite) TestUpdateOrderLine_UnknownLine_Returns404() {
	id := suite.placeOrder()

	rec := suite.do(http.MethodPut, "/api/v1/orders/"+id+"/lines/missing", `{"quantity":10}`)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestRemoveOrderLine() {
	id := suite.placeOrder()
	lines := suite.getOrder(id).OrderLines

	rec := suite.do(http.MethodDelete, "/api/v1/orders/"+id+"/lines/"+lines[0].Identifier, "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Len(suite.getOrder(id).OrderLines, 1)

	rec = suite.do(http.MethodDelete, "/api/v1/orders/"+id+"/lines/"+lines[1].Identifier, "")
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.decodeError(rec).Message, "at least one order line")
}

func (suite *ServerTestSuite) TestHealthAndMetrics() {
	rec := suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())

	suite.do(http.MethodGet, "/api/v1/orders", "")

	rec = suite.do(http.MethodGet, "/metrics", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `ordering_http_requests_total{handler="/api/v1/orders",method="GET",status="200"}`)
}

func (suite *ServerTestSuite) TestSwaggerDoc() {
	rec := suite.do(http.MethodGet, "/swagger/doc.json", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Ordering API")
}

func (suite *ServerTestSuite) TestUnknownRoute_ReturnsErrorBody() {
	rec := suite.do(http.MethodGet, "/api/v1/unknown", "")

	suite.Equal(http.StatusNotFound, rec.Code)
	e := suite.decodeError(rec)
	suite.Equal(http.StatusNotFound, e.Code)
	suite.Equal("Not Found", e.Message)
}

func (suite *ServerTestSuite) TestUnsupportedMethod_ReturnsErrorBody() {
	rec := suite.do(http.MethodPatch, "/api/v1/orders", "")

	suite.Equal(http.StatusMethodNotAllowed, rec.Code)
	e := suite.decodeError(rec)
	suite.Equal(http.StatusMethodNotAllowed, e.Code)
	suite.NotEmpty(e.Message)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestNewRouter_CanBeBuiltTwice(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	server := httpadapter.NewServer(httpadapter.Handlers{}, logger)

	_, err := httpadapter.NewRouter(server, httpadapter.NewMetrics(prometheus.NewRegistry()), logger)
	require.NoError(t, err)
	_, err = httpadapter.NewRouter(server, httpadapter.NewMetrics(prometheus.NewRegistry()), logger)
	assert.NoError(t, err)
}
