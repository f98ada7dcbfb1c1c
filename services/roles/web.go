package roles

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
)

type webService struct {
	logger   mylog.Logger
	service  *Service
	validate *validator.Validate
}

func NewWebService(service *Service) *webService {
	return &webService{
		logger:   mylog.New("roles"),
		service:  service,
		validate: validator.New(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/roles/{email}", s.getRole()).Methods("GET")
	router.HandleFunc("/api/roles/{email}", s.assignRole()).Methods("PUT")
}

func (s *webService) getRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		email := mux.Vars(r)["email"]
		role, found, err := s.service.Get(c, email)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("No role assigned to %s", email)))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, Assignment{Email: email, Role: role})
	}
}

func (s *webService) assignRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := AssignRoleRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err == nil {
			err = s.validate.Struct(req)
		}
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("Invalid request: %s", err)))
			return
		}

		email := mux.Vars(r)["email"]
		role, err := s.service.Assign(c, email, req.Role)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, Assignment{Email: email, Role: role})
	}
}
