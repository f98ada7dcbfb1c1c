package orderhistory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/myevents"
	"github.com/MarcGrol/shopfront/lib/mylocalstore"
	"github.com/MarcGrol/shopfront/lib/mymetrics"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/services/orderhistory/orderevents"
	"github.com/MarcGrol/shopfront/services/roles"
)

func TestOrderHistoryWeb(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := context.TODO()

	t.Run("Record and list", func(t *testing.T) {
		// setup
		router, _, publisher, _ := setupWeb(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), orderevents.TopicName, gomock.Any()).Return(nil)

		// when
		response := call(t, router, http.MethodPost, "/api/orders/user_1", `{"id":"order_1","paymentId":"pay_1","total":129,"items":[]}`, "")

		// then
		assert.Equal(t, http.StatusCreated, response.Code)

		// when
		response = call(t, router, http.MethodGet, "/api/orders/user_1", ``, "")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `[{"id":"order_1","paymentId":"pay_1","total":"129","items":[],"date":"2023-02-27T23:58:59Z","status":"confirmed"}]`, response.Body.String())
	})

	t.Run("Record without payment id", func(t *testing.T) {
		// setup
		router, _, _, _ := setupWeb(t, ctrl)

		// when
		response := call(t, router, http.MethodPost, "/api/orders/user_1", `{"id":"order_1"}`, "")

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Record with unknown status", func(t *testing.T) {
		// setup
		router, _, _, _ := setupWeb(t, ctrl)

		// when
		response := call(t, router, http.MethodPost, "/api/orders/user_1", `{"id":"order_1","paymentId":"pay_1","status":"lost"}`, "")

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Admin endpoints require admin role", func(t *testing.T) {
		// setup
		router, store, _, _ := setupWeb(t, ctrl)

		// given
		store.SetItem(c, "user_role_eva@home.nl", "customer")

		// when
		response := call(t, router, http.MethodGet, "/api/admin/stats", ``, "eva@home.nl")

		// then
		assert.Equal(t, http.StatusForbidden, response.Code)
		assert.JSONEq(t, `{"error":"Admin role required"}`, response.Body.String())

		// when
		response = call(t, router, http.MethodGet, "/api/admin/orders", ``, "")

		// then
		assert.Equal(t, http.StatusForbidden, response.Code)
	})

	t.Run("Admin lists, filters and updates", func(t *testing.T) {
		// setup
		router, store, publisher, _ := setupWeb(t, ctrl)

		// given
		store.SetItem(c, "user_role_marc@home.nl", "admin")
		store.SetItem(c, "orders_user_1", `[{"id":"order_1","paymentId":"pay_1","total":"10","status":"confirmed","date":"2023-02-27T10:00:00Z"}]`)
		publisher.EXPECT().Publish(gomock.Any(), orderevents.TopicName, gomock.Any()).Return(nil)

		// when
		response := call(t, router, http.MethodGet, "/api/admin/orders?status=confirmed&search=ORDER_1", ``, "marc@home.nl")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		orders := []AdminOrder{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &orders))
		assert.Len(t, orders, 1)
		assert.Equal(t, "user_1", orders[0].CustomerUID)

		// when
		response = call(t, router, http.MethodPut, "/api/admin/orders/user_1/order_1/status", `{"status":"shipped"}`, "marc@home.nl")

		// then
		assert.Equal(t, http.StatusOK, response.Code)

		// when
		response = call(t, router, http.MethodGet, "/api/admin/stats", ``, "marc@home.nl")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		stats := Stats{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &stats))
		assert.Equal(t, 1, stats.ShippedOrders)
		assert.Equal(t, 0, stats.PendingOrders)
	})

	t.Run("Admin update with unknown status", func(t *testing.T) {
		// setup
		router, store, _, _ := setupWeb(t, ctrl)

		// given
		store.SetItem(c, "user_role_marc@home.nl", "admin")

		// when
		response := call(t, router, http.MethodPut, "/api/admin/orders/user_1/order_1/status", `{"status":"lost"}`, "marc@home.nl")

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Order placed event updates metrics", func(t *testing.T) {
		// setup
		router, _, _, metrics := setupWeb(t, ctrl)

		// given
		payload, _ := json.Marshal(orderevents.OrderPlaced{CustomerUID: "user_1", OrderUID: "order_1", PaymentID: "pay_1", TotalInMinorUnits: 12900})
		envelope, _ := json.Marshal(myevents.EventEnvelope{Topic: orderevents.TopicName, EventTypeName: "orders.placed", AggregateUID: "order_1", EventPayload: string(payload)})
		body, _ := json.Marshal(myevents.PushRequest{Message: myevents.PushMessage{Data: envelope}})

		// when
		response := call(t, router, http.MethodPost, "/api/orders/event", string(body), "")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		exposition := httptest.NewRecorder()
		metrics.Handler().ServeHTTP(exposition, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Contains(t, exposition.Body.String(), "shopfront_orders_placed_total 1")
		assert.Contains(t, exposition.Body.String(), "shopfront_orders_revenue_minor_units_total 12900")
	})

	t.Run("Status changed event counts known statuses only", func(t *testing.T) {
		// setup
		router, _, _, metrics := setupWeb(t, ctrl)

		for _, newStatus := range []string{"shipped", "lost", "shipped"} {
			// given
			body := statusChangedPush(t, newStatus)

			// when
			response := call(t, router, http.MethodPost, "/api/orders/event", body, "")

			// then
			assert.Equal(t, http.StatusOK, response.Code)
		}
		exposition := httptest.NewRecorder()
		metrics.Handler().ServeHTTP(exposition, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Contains(t, exposition.Body.String(), `shopfront_orders_status_changes_total{status="shipped"} 2`)
		assert.NotContains(t, exposition.Body.String(), `status="lost"`)
	})
}

func statusChangedPush(t *testing.T, newStatus string) string {
	payload, err := json.Marshal(orderevents.OrderStatusChanged{CustomerUID: "user_1", OrderUID: "order_1", OldStatus: "confirmed", NewStatus: newStatus})
	assert.NoError(t, err)
	envelope, err := json.Marshal(myevents.EventEnvelope{Topic: orderevents.TopicName, EventTypeName: "orders.statusChanged", AggregateUID: "order_1", EventPayload: string(payload)})
	assert.NoError(t, err)
	body, err := json.Marshal(myevents.PushRequest{Message: myevents.PushMessage{Data: envelope}})
	assert.NoError(t, err)
	return string(body)
}

func setupWeb(t *testing.T, ctrl *gomock.Controller) (*mux.Router, mylocalstore.LocalStore, *mypublisher.MockPublisher, *mymetrics.Metrics) {
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	entries, _, err := mystore.NewInMemoryStore[mylocalstore.Entry](context.TODO())
	assert.NoError(t, err)
	store := mylocalstore.New(entries, nower)
	publisher := mypublisher.NewMockPublisher(ctrl)
	metrics := mymetrics.New()

	service := NewService(store, publisher, mypubsub.NewFake(), metrics, nower, "http://localhost:8080")
	router := mux.NewRouter()
	err = NewWebService(service, roles.NewService(store)).RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)

	return router, store, publisher, metrics
}

func call(t *testing.T, router *mux.Router, method string, url string, body string, userEmail string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(method, url, strings.NewReader(body))
	assert.NoError(t, err)
	if userEmail != "" {
		request.Header.Set(roles.UserEmailHeader, userEmail)
	}
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
