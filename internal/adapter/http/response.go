package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"collabhub/internal/core/domain"
)

type errorPayload struct {
	Kind    domain.Kind         `json:"kind"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindConflict, domain.KindInvalidState:
		return http.StatusConflict
	case domain.KindTransient:
		return http.StatusServiceUnavailable
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// writeError renders err as the JSON error body. Errors without a domain
// kind are logged and answered with a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		h.logger.Error("request error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		writeJSON(w, h.logger, http.StatusInternalServerError, errorResponse{Error: errorPayload{
			Kind:    "internal",
			Message: "internal error",
		}})
		return
	}
	if de.Kind == domain.KindTransient {
		h.logger.Warn("transient failure",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
	}
	writeJSON(w, h.logger, statusFor(de.Kind), errorResponse{Error: errorPayload{
		Kind:    de.Kind,
		Message: de.Message,
		Fields:  de.Fields,
	}})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		logger.Error("encode response error", slog.Any("error", err))
	}
}

const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON document from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var errs domain.ValidationErrors
		if errors.Is(err, io.EOF) {
			errs.Add("body", "is required")
		} else {
			errs.Add("body", "invalid JSON: %v", err)
		}
		return errs.Err()
	}
	return nil
}

// pageRequest parses page and the named size parameter. Absent values are
// left zero for the use case to default.
func pageRequest(r *http.Request, sizeParam string) (domain.PageRequest, error) {
	var (
		q    = r.URL.Query()
		req  domain.PageRequest
		errs domain.ValidationErrors
	)
	parse := func(name string, dst *int) {
		raw := q.Get(name)
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs.Add(name, "must be an integer")
			return
		}
		*dst = n
	}
	parse("page", &req.Page)
	parse(sizeParam, &req.PageSize)
	return req, errs.Err()
}

func requireRole(actor domain.Actor, roles ...domain.Role) error {
	for _, role := range roles {
		if actor.Role == role {
			return nil
		}
	}
	return domain.Forbidden(fmt.Sprintf("role %q may not perform this action", actor.Role))
}
