package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
	"github.com/vadimbarashkov/tinyapp/internal/session"
)

const (
	loginPath = "/api/v1/login"
	urlsPath  = "/api/v1/urls"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

// handleRoot sends logged in users to their URLs and everyone else to the login form.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()).IsAuthenticated() {
		http.Redirect(w, r, urlsPath, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func shortURLPath(shortCode string) string {
	return "/u/" + shortCode
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// decodeRequest decodes and validates a JSON body into req.
// It writes the 400 response itself and reports false when the body is unusable.
func decodeRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate, req any) bool {
	if err := render.DecodeJSON(r.Body, req); err != nil {
		render.Status(r, http.StatusBadRequest)

		if errors.Is(err, io.EOF) {
			render.JSON(w, r, emptyRequestBodyResponse)
			return false
		}

		render.JSON(w, r, invalidRequestBodyResponse)
		return false
	}

	if err := validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return false
	}

	return true
}

// renderError maps a use case error to its status and message.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := http.StatusInternalServerError, serverErrorResponse

	switch {
	case errors.Is(err, entity.ErrValidation):
		status, resp = http.StatusBadRequest, blankFieldsResponse
	case errors.Is(err, entity.ErrEmailExists):
		status, resp = http.StatusBadRequest, emailExistsResponse
	case errors.Is(err, entity.ErrUserNotFound):
		status, resp = http.StatusForbidden, emailNotFoundResponse
	case errors.Is(err, entity.ErrInvalidCredentials):
		status, resp = http.StatusForbidden, incorrectPasswordResponse
	case errors.Is(err, entity.ErrUnauthenticated):
		status, resp = http.StatusForbidden, notLoggedInResponse
	case errors.Is(err, entity.ErrForbidden):
		status, resp = http.StatusForbidden, forbiddenResponse
	case errors.Is(err, entity.ErrURLNotFound):
		status, resp = http.StatusNotFound, urlNotFoundResponse
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

// fingerprint identifies the visitor by remote address without the port.
// RealIP has already replaced RemoteAddr when a proxy header was present.
func fingerprint(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isUnauthenticated(err error) bool {
	return errors.Is(err, entity.ErrUnauthenticated)
}
