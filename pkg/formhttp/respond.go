package formhttp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formstate/pkg/binder"
	"github.com/dmitrymomot/formstate/pkg/draft"
	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// View is the form state sent to clients. DataStar clients receive it as
// top-level signals, so inputs bind to $values.<field> and messages read
// from $errors.first.<field>.
type View struct {
	ID      string          `json:"id"`
	Values  map[string]any  `json:"values"`
	Errors  form.ErrorsView `json:"errors"`
	Touched map[string]bool `json:"touched"`
	Pending map[string]bool `json:"pending"`
	Valid   bool            `json:"valid"`
}

func viewOf(id string, f *form.Form[any]) View {
	return View{
		ID:      id,
		Values:  f.Values(),
		Errors:  f.Errors(),
		Touched: f.Touched(),
		Pending: f.Pending(),
		Valid:   f.IsValid(),
	}
}

// Response is the JSON envelope for non-DataStar clients.
type Response struct {
	Data  *View        `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes why a request was rejected.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, view View, detail *ErrorDetail) {
	if IsDataStar(r) {
		data, err := json.Marshal(view)
		if err != nil {
			h.logger.ErrorContext(r.Context(), "failed to encode signals", logger.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		sse := datastar.NewSSE(w, r)
		if err := sse.PatchSignals(data); err != nil {
			h.logger.WarnContext(r.Context(), "failed to patch signals",
				logger.FormID(view.ID),
				logger.Error(err),
			)
		}
		return
	}

	writeJSON(w, status, Response{Data: &view, Error: detail})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := errorToDetail(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "form request failed",
			logger.Error(err),
		)
	}
	writeJSON(w, status, Response{Error: detail})
}

func errorToDetail(err error) (int, *ErrorDetail) {
	switch {
	case errors.Is(err, ErrFormNotFound), errors.Is(err, draft.ErrDraftNotFound):
		return http.StatusNotFound, &ErrorDetail{Code: "not_found", Message: ErrFormNotFound.Error()}
	case errors.Is(err, ErrFormExpired), errors.Is(err, draft.ErrDraftExpired):
		return http.StatusGone, &ErrorDetail{Code: "expired", Message: ErrFormExpired.Error()}
	case errors.Is(err, binder.ErrRequestTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: "too_large", Message: err.Error()}
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrFieldRequired),
		errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm):
		return http.StatusBadRequest, &ErrorDetail{Code: "invalid_request", Message: err.Error()}
	case errors.Is(err, form.ErrSubmitFailed):
		return http.StatusInternalServerError, &ErrorDetail{Code: "submit_failed", Message: form.ErrSubmitFailed.Error()}
	default:
		return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
	}
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
