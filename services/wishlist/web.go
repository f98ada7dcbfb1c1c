package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/catalog"
)

type webService struct {
	logger   mylog.Logger
	service  *Service
	catalog  *catalog.Service
	validate *validator.Validate
}

func NewWebService(service *Service, catalog *catalog.Service) *webService {
	return &webService{
		logger:   mylog.New("wishlist"),
		service:  service,
		catalog:  catalog,
		validate: validator.New(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/wishlist/{userUID}", s.getWishlist()).Methods("GET")
	router.HandleFunc("/api/wishlist/{userUID}", s.addItem()).Methods("POST")
	router.HandleFunc("/api/wishlist/{userUID}", s.clearWishlist()).Methods("DELETE")
	router.HandleFunc("/api/wishlist/{userUID}/toggle", s.toggleItem()).Methods("POST")
	router.HandleFunc("/api/wishlist/{userUID}/{productUID}", s.containsItem()).Methods("GET")
	router.HandleFunc("/api/wishlist/{userUID}/{productUID}", s.removeItem()).Methods("DELETE")
}

func (s *webService) getWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		wishlist, err := s.service.Get(c, mux.Vars(r)["userUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, wishlist)
	}
}

func (s *webService) containsItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]
		present, err := s.service.Contains(c, mux.Vars(r)["userUID"], productUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, ContainsResponse{ProductID: productUID, InWishlist: present})
	}
}

func (s *webService) addItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		product, err := s.productFromRequest(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		change, err := s.service.Add(c, mux.Vars(r)["userUID"], product)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, change)
	}
}

func (s *webService) toggleItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		product, err := s.productFromRequest(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		change, err := s.service.Toggle(c, mux.Vars(r)["userUID"], product)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, change)
	}
}

func (s *webService) removeItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		change, err := s.service.Remove(c, mux.Vars(r)["userUID"], mux.Vars(r)["productUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, change)
	}
}

func (s *webService) clearWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		wishlist, err := s.service.Clear(c, mux.Vars(r)["userUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, wishlist)
	}
}

func (s *webService) productFromRequest(c context.Context, r *http.Request) (catalog.Product, error) {
	req := AddItemRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err == nil {
		err = s.validate.Struct(req)
	}
	if err != nil {
		return catalog.Product{}, myerrors.NewInvalidInputError(fmt.Errorf("Invalid request: %s", err))
	}

	return s.catalog.Get(c, req.ProductID)
}
