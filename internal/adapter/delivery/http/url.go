package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
	"github.com/vadimbarashkov/tinyapp/internal/session"
)

type urlUseCase interface {
	ShortenURL(ctx context.Context, principal entity.Principal, longURL string) (*entity.URL, error)
	ResolveShortCode(ctx context.Context, shortCode string, visitor entity.Visitor) (*entity.URL, entity.VisitOutcome, error)
	ListURLs(ctx context.Context, principal entity.Principal) (map[string]*entity.URL, error)
	GetURL(ctx context.Context, principal entity.Principal, shortCode string) (*entity.URL, error)
	ModifyURL(ctx context.Context, principal entity.Principal, shortCode, longURL string) (*entity.URL, error)
	DeactivateURL(ctx context.Context, principal entity.Principal, shortCode string) error
}

type urlHandler struct {
	useCase  urlUseCase
	sessions *session.Manager
	validate *validator.Validate
}

func newURLHandler(useCase urlUseCase, sessions *session.Manager, validate *validator.Validate) *urlHandler {
	return &urlHandler{
		useCase:  useCase,
		sessions: sessions,
		validate: validate,
	}
}

// followShortCode redirects anyone to the long URL and records the visit.
// A first-time visitor without a session is handed an anonymous one.
func (h *urlHandler) followShortCode(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	url, outcome, err := h.useCase.ResolveShortCode(r.Context(), shortCode, entity.Visitor{
		Fingerprint: fingerprint(r),
		Principal:   session.FromContext(r.Context()),
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	if outcome.AssignedVisitorID != "" {
		err := h.sessions.Issue(w, entity.Principal{ID: outcome.AssignedVisitorID, Anonymous: true})
		if err != nil {
			httplog.LogEntrySetField(r.Context(), "session_err", slog.AnyValue(err))
		}
	}

	http.Redirect(w, r, url.LongURL, http.StatusFound)
}

func (h *urlHandler) listURLs(w http.ResponseWriter, r *http.Request) {
	urls, err := h.useCase.ListURLs(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		if isUnauthenticated(err) {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}

		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLListResponse(urls))
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req urlRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	url, err := h.useCase.ShortenURL(r.Context(), session.FromContext(r.Context()), req.LongURL)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toURLResponse(url))
}

func (h *urlHandler) getURL(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	url, err := h.useCase.GetURL(r.Context(), session.FromContext(r.Context()), shortCode)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLDetailResponse(url))
}

func (h *urlHandler) modifyURL(w http.ResponseWriter, r *http.Request) {
	var req urlRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	shortCode := chi.URLParam(r, "shortCode")

	url, err := h.useCase.ModifyURL(r.Context(), session.FromContext(r.Context()), shortCode, req.LongURL)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLResponse(url))
}

func (h *urlHandler) deactivateURL(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	if err := h.useCase.DeactivateURL(r.Context(), session.FromContext(r.Context()), shortCode); err != nil {
		renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
