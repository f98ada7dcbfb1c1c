package myhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
)

func TestResponseWriter(t *testing.T) {
	writer := NewWriter(mylog.New("myhttp"))

	t.Run("Error response", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WriteError(context.TODO(), response, 1, myerrors.NewInvalidInputError(fmt.Errorf("Invalid amount")))

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		assert.Equal(t, "*", response.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "authorization, x-client-info, apikey, content-type", response.Header().Get("Access-Control-Allow-Headers"))
		resp := ErrorResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid amount", resp.Error)
	})

	t.Run("Success response", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.Write(context.TODO(), response, http.StatusOK, SuccessResponse{Message: "ok"})

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "*", response.Header().Get("Access-Control-Allow-Origin"))
		assert.JSONEq(t, `{"message":"ok"}`, response.Body.String())
	})
}

func TestCORSPreflight(t *testing.T) {
	router := mux.NewRouter()
	router.Use(CORS())
	router.HandleFunc("/create-razorpay-order", func(w http.ResponseWriter, r *http.Request) {}).Methods(http.MethodPost, http.MethodOptions)

	request, err := http.NewRequest(http.MethodOptions, "/create-razorpay-order", nil)
	assert.NoError(t, err)
	request.Header.Set("Origin", "http://localhost:5173")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	request.Header.Set("Access-Control-Request-Headers", "content-type")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, "*", response.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, response.Code)
}

func TestCORSPreflightAdminHeader(t *testing.T) {
	router := mux.NewRouter()
	router.Use(CORS())
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(Preflight)

	request, err := http.NewRequest(http.MethodOptions, "/api/admin/stats", nil)
	assert.NoError(t, err)
	request.Header.Set("Origin", "http://localhost:5173")
	request.Header.Set("Access-Control-Request-Method", http.MethodGet)
	request.Header.Set("Access-Control-Request-Headers", "x-user-email")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, "*", response.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, response.Code)
}
