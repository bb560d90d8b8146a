package http

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

const statusError = "error"

// urlRequest represents the structure for a request to shorten or modify a URL.
type urlRequest struct {
	LongURL string `json:"long_url" validate:"required,url"`
}

// credentialsRequest represents the structure for a register or login request.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// formResponse describes the fields a register or login request expects.
type formResponse struct {
	Action string   `json:"action"`
	Method string   `json:"method"`
	Fields []string `json:"fields"`
}

var credentialsFields = []string{"email", "password"}

// userResponse represents the structure for a response containing account information.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// urlResponse represents the structure for a response containing shortened URL information.
type urlResponse struct {
	ShortCode string    `json:"short_code"`
	ShortURL  string    `json:"short_url"`
	LongURL   string    `json:"long_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toURLResponse(url *entity.URL) urlResponse {
	return urlResponse{
		ShortCode: url.ShortCode,
		ShortURL:  shortURLPath(url.ShortCode),
		LongURL:   url.LongURL,
		CreatedAt: url.CreatedAt,
		UpdatedAt: url.UpdatedAt,
	}
}

// urlListResponse lists the URLs of one owner, oldest first.
type urlListResponse struct {
	URLs []urlResponse `json:"urls"`
}

func toURLListResponse(urls map[string]*entity.URL) urlListResponse {
	sorted := make([]*entity.URL, 0, len(urls))
	for _, url := range urls {
		sorted = append(sorted, url)
	}

	slices.SortFunc(sorted, func(a, b *entity.URL) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ShortCode, b.ShortCode)
	})

	resp := urlListResponse{URLs: make([]urlResponse, 0, len(sorted))}
	for _, url := range sorted {
		resp.URLs = append(resp.URLs, toURLResponse(url))
	}

	return resp
}

// urlDetailResponse represents a URL together with its visit analytics.
type urlDetailResponse struct {
	urlResponse
	Stats urlStats `json:"stats"`
}

type urlStats struct {
	VisitCount     int64          `json:"visit_count"`
	UniqueVisitors int            `json:"unique_visitors"`
	Visits         []visitEntry   `json:"visits"`
	Visitors       []visitorEntry `json:"visitors"`
}

type visitEntry struct {
	Number    int64     `json:"number"`
	VisitedAt time.Time `json:"visited_at"`
}

type visitorEntry struct {
	Fingerprint string `json:"fingerprint"`
	VisitorID   string `json:"visitor_id"`
}

func toURLDetailResponse(url *entity.URL) urlDetailResponse {
	visits := make([]visitEntry, 0, len(url.Visits))
	for _, v := range url.Visits {
		visits = append(visits, visitEntry{Number: v.Number, VisitedAt: v.VisitedAt})
	}

	visitors := make([]visitorEntry, 0, len(url.UniqueVisitors))
	for fingerprint, id := range url.UniqueVisitors {
		visitors = append(visitors, visitorEntry{Fingerprint: fingerprint, VisitorID: id})
	}
	slices.SortFunc(visitors, func(a, b visitorEntry) int {
		return strings.Compare(a.Fingerprint, b.Fingerprint)
	})

	return urlDetailResponse{
		urlResponse: toURLResponse(url),
		Stats: urlStats{
			VisitCount:     url.VisitCount,
			UniqueVisitors: len(url.UniqueVisitors),
			Visits:         visits,
			Visitors:       visitors,
		},
	}
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	blankFieldsResponse = errorResponse{
		Status:  statusError,
		Message: "required fields cannot be blank",
	}

	emailExistsResponse = errorResponse{
		Status:  statusError,
		Message: "a user already exists with that email",
	}

	emailNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "email cannot be found",
	}

	incorrectPasswordResponse = errorResponse{
		Status:  statusError,
		Message: "incorrect password",
	}

	notLoggedInResponse = errorResponse{
		Status:  statusError,
		Message: "user not logged in",
	}

	forbiddenResponse = errorResponse{
		Status:  statusError,
		Message: "you do not have permission to access this url",
	}

	urlNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "url not found",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "email":
		return "invalid email"
	default:
		return "invalid value"
	}
}

// getValidationErrors processes validation errors and returns a list of validationError.
func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

// validationErrorResponse constructs an errorResponse for validation errors.
func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}
