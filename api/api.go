//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml openapi.yaml
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/account-signup/registration"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

// MachineFactory builds the state machine for a new signup draft, with its own
// challenge session.
type MachineFactory func() *registration.Machine

type API struct {
	drafts     *DraftStore
	newMachine MachineFactory
	logger     *slog.Logger
	env        Environment
}

var _ StrictServerInterface = (*API)(nil)

func NewAPI(newMachine MachineFactory, drafts *DraftStore, logger *slog.Logger, env Environment) *API {
	return &API{
		drafts:     drafts,
		newMachine: newMachine,
		logger:     logger,
		env:        env,
	}
}

// Handler returns the signup routes wrapped in request validation, access
// logging and CORS.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	swagger.Servers = nil

	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			a.getLoggerOrBaseLogger(r.Context()).Warn("Invalid request body", slog.String("error", err.Error()))
			a.writeError(w, r, http.StatusBadRequest, Error{Code: InvalidBody, Message: "Invalid body"})
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			a.getLoggerOrBaseLogger(r.Context()).Error("Failed to write response", slog.String("error", err.Error()))
			a.writeError(w, r, http.StatusInternalServerError, Error{Code: InternalError, Message: "Failed to write response"})
		},
	})

	r := http.NewServeMux()
	HandlerWithOptions(strictHandler, StdHTTPServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			a.writeError(w, r, http.StatusBadRequest, Error{Code: InputValidationError, Message: err.Error()})
		},
	})

	return useMiddlewares(r,
		a.openapiValidateMiddleware(swagger),
		maxBodyMiddleware(maxBodyBytes),
		a.loggingMiddleware(),
		a.corsMiddleware(),
	), nil
}
