package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/myvault"
)

type Status struct {
	Message            string `json:"message"`
	PaymentsConfigured bool   `json:"paymentsConfigured"`
}

type webService struct {
	logger mylog.Logger
	vault  myvault.VaultReader
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(vault myvault.VaultReader) *webService {
	return &webService{
		logger: mylog.New("warmup"),
		vault:  vault,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

// warmupPage touches the secret store so the first real payment request does not pay the connection cost.
// Missing keys are reported, not treated as a failure.
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		configured := true
		for _, name := range []string{myvault.RazorpayKeyID, myvault.RazorpayKeySecret} {
			_, found, err := s.vault.Get(c, name)
			if err != nil {
				errorWriter.WriteError(c, w, 1, err)
				return
			}
			configured = configured && found
		}
		if !configured {
			s.logger.Log(c, "", mylog.SeverityWarn, "Razorpay keys not configured")
		}

		errorWriter.Write(c, w, http.StatusOK, Status{
			Message:            "Successfully processed warmup request",
			PaymentsConfigured: configured,
		})
	}
}
