package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/materials/internal/entity"
)

const (
	errInternalText = "Internal error"
	maxBodyBytes    = 1 << 20
)

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type ListResponse[T any] struct {
	Data  []T    `json:"data"`
	Total int    `json:"total"`
	Page  uint64 `json:"page"`
	Limit uint64 `json:"limit"`
}

// nonNil makes an empty list encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error()})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

// SendServiceErr maps a service error to its HTTP status. msg is used for
// errors that have no more specific message.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		SendErr(ctx, w, http.StatusUnprocessableEntity, err, validationMessage(err))
	case errors.Is(err, entity.ErrIncorrectBody):
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
	case errors.Is(err, entity.ErrInvalidCredentials):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Invalid email or password")
	case errors.Is(err, entity.ErrUnauthorized), errors.Is(err, entity.ErrInvalidToken):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Unauthenticated")
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, "Access denied")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, msg+": not found")
	case errors.Is(err, entity.ErrAlreadyExists):
		SendErr(ctx, w, http.StatusConflict, err, msg+": already exists")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}

// validationMessage returns the field-level error text without the
// generic validation prefix.
func validationMessage(err error) string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			if !errors.Is(e, entity.ErrValidation) {
				return e.Error()
			}
		}
	}

	return err.Error()
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrIncorrectBody, err)
	}

	return nil
}

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", entity.ErrIncorrectBody, raw)
	}

	return id, nil
}

// parsePage reads page and limit. Missing or malformed values fall back to
// zero and are defaulted by the service.
func parsePage(q url.Values) entity.Page {
	page, err := strconv.ParseUint(q.Get("page"), 10, 64)
	if err != nil {
		page = 0
	}

	limit, err := strconv.ParseUint(q.Get("limit"), 10, 64)
	if err != nil {
		limit = 0
	}

	return entity.Page{Page: page, Limit: limit}
}
