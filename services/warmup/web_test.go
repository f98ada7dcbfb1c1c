package warmup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/myvault"
)

func TestWarmup(t *testing.T) {

	t.Run("Configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, vault := setup(ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.RazorpayKeyID).Return("rzp_test_key", true, nil)
		vault.EXPECT().Get(gomock.Any(), myvault.RazorpayKeySecret).Return("s3cr3t", true, nil)

		// when
		response := get(t, router)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"message":"Successfully processed warmup request","paymentsConfigured":true}`, response.Body.String())
	})

	t.Run("Not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, vault := setup(ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.RazorpayKeyID).Return("", false, nil)
		vault.EXPECT().Get(gomock.Any(), myvault.RazorpayKeySecret).Return("", false, nil)

		// when
		response := get(t, router)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"message":"Successfully processed warmup request","paymentsConfigured":false}`, response.Body.String())
	})

	t.Run("Vault unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, vault := setup(ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.RazorpayKeyID).Return("", false, fmt.Errorf("datastore down"))

		// when
		response := get(t, router)

		// then
		assert.Equal(t, http.StatusInternalServerError, response.Code)
	})
}

func get(t *testing.T, router *mux.Router) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodGet, "/_ah/warmup", nil)
	assert.NoError(t, err)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func setup(ctrl *gomock.Controller) (*mux.Router, *myvault.MockVaultReader) {
	vault := myvault.NewMockVaultReader(ctrl)
	router := mux.NewRouter()
	NewService(vault).RegisterEndpoints(context.TODO(), router)
	return router, vault
}
