package orderhistory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/orderhistory/orderevents"
	"github.com/MarcGrol/shopfront/services/roles"
)

type webService struct {
	logger   mylog.Logger
	service  *Service
	roles    *roles.Service
	validate *validator.Validate
}

func NewWebService(service *Service, roles *roles.Service) *webService {
	return &webService{
		logger:   mylog.New("orderhistory"),
		service:  service,
		roles:    roles,
		validate: validator.New(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Pubsub pushes order events here
	router.HandleFunc("/api/orders/event", s.handleEventEnvelope()).Methods("POST")

	router.HandleFunc("/api/orders/{userUID}", s.listOrders()).Methods("GET")
	router.HandleFunc("/api/orders/{userUID}", s.recordOrder()).Methods("POST")

	// Admin only
	router.HandleFunc("/api/admin/stats", s.adminOnly(s.stats())).Methods("GET")
	router.HandleFunc("/api/admin/orders", s.adminOnly(s.adminOrders())).Methods("GET")
	router.HandleFunc("/api/admin/orders/{userUID}/{orderUID}/status", s.adminOnly(s.updateStatus())).Methods("PUT")

	err := s.service.Subscribe(c)
	if err != nil {
		return err
	}

	return nil
}

func (s *webService) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := s.roles.RequireAdmin(c, r.Header.Get(roles.UserEmailHeader))
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		next(w, r)
	}
}

func (s *webService) listOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orders, err := s.service.ListOrders(c, mux.Vars(r)["userUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, orders)
	}
}

func (s *webService) recordOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		order := OrderRecord{}
		err := json.NewDecoder(r.Body).Decode(&order)
		if err == nil {
			err = s.validate.Struct(order)
		}
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("Invalid request: %s", err)))
			return
		}

		order, err = s.service.RecordOrder(c, mux.Vars(r)["userUID"], order)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusCreated, order)
	}
}

func (s *webService) stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		stats, err := s.service.Stats(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, stats)
	}
}

func (s *webService) adminOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		filter := AdminFilter{}
		err := formcodec.NewDecoder().Decode(&filter, r.URL.Query())
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error decoding query: %s", err)))
			return
		}

		orders, err := s.service.AdminOrders(c, filter)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, orders)
	}
}

func (s *webService) updateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := UpdateStatusRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err == nil {
			err = s.validate.Struct(req)
		}
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("Invalid request: %s", err)))
			return
		}

		order, err := s.service.UpdateStatus(c, mux.Vars(r)["userUID"], mux.Vars(r)["orderUID"], req.Status)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, order)
	}
}

func (s *webService) handleEventEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := orderevents.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed event",
		})
	}
}
