package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
	"github.com/vadimbarashkov/tinyapp/internal/session"
)

type userUseCase interface {
	Register(ctx context.Context, email, password string) (*entity.User, error)
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	GetUser(ctx context.Context, principal entity.Principal) (*entity.User, error)
}

type userHandler struct {
	useCase  userUseCase
	sessions *session.Manager
	validate *validator.Validate
}

func newUserHandler(useCase userUseCase, sessions *session.Manager, validate *validator.Validate) *userHandler {
	return &userHandler{
		useCase:  useCase,
		sessions: sessions,
		validate: validate,
	}
}

// form describes the expected request, or sends logged in users to their URLs.
func (h *userHandler) form(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if session.FromContext(r.Context()).IsAuthenticated() {
			http.Redirect(w, r, urlsPath, http.StatusSeeOther)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, formResponse{
			Action: action,
			Method: http.MethodPost,
			Fields: credentialsFields,
		})
	}
}

func (h *userHandler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	user, err := h.useCase.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := h.sessions.Issue(w, entity.Principal{ID: user.ID}); err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toUserResponse(user))
}

func (h *userHandler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	user, err := h.useCase.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := h.sessions.Issue(w, entity.Principal{ID: user.ID}); err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toUserResponse(user))
}

func (h *userHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, urlsPath, http.StatusSeeOther)
}

// me returns the logged in account. A session naming an unknown account is dropped.
func (h *userHandler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.useCase.GetUser(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			h.sessions.Clear(w)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, notLoggedInResponse)
			return
		}

		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toUserResponse(user))
}
