package formhttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formstate/pkg/binder"
	"github.com/dmitrymomot/formstate/pkg/draft"
	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/messages"
	"github.com/dmitrymomot/formstate/pkg/sanitizer"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// Event names, also used as route suffixes.
const (
	EventFocusIn  = "focusin"
	EventFocusOut = "focusout"
	EventSubmit   = "submit"
	EventReset    = "reset"
)

// Definition describes the form served by a Handler.
type Definition struct {
	InitialValues map[string]any
	Schema        map[string]validator.Schema[any]
	OnSubmit      form.SubmitFunc[any]
}

// Handler hosts one form definition over HTTP. The server keeps no form in
// memory between requests: every request rebuilds the form from its draft,
// applies the event and stores the new snapshot.
type Handler struct {
	def        Definition
	store      draft.Store
	logger     *slog.Logger
	catalog    *messages.Catalog
	sanitizers map[string]func(string) string
	ttl        time.Duration
}

// NewHandler returns a Handler serving def with drafts kept in store.
func NewHandler(def Definition, store draft.Store, opts ...Option) *Handler {
	h := &Handler{
		def:    def,
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ttl:    DefaultDraftTTL,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("formhttp"))
	return h
}

// Routes returns the router to mount under the form's base path.
//
//	POST /                create a draft, 201
//	GET  /{id}            current state
//	POST /{id}/focusin    clear the field's errors, mark it touched
//	POST /{id}/focusout   validate the field
//	POST /{id}/submit     validate everything, 422 when invalid
//	POST /{id}/reset      restore initial values
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.show)
		r.Post("/"+EventFocusIn, h.event(EventFocusIn, h.focusIn))
		r.Post("/"+EventFocusOut, h.event(EventFocusOut, h.focusOut))
		r.Post("/"+EventSubmit, h.event(EventSubmit, h.submit))
		r.Post("/"+EventReset, h.event(EventReset, h.reset))
	})
	return r
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	f := h.newForm(r)
	d := draft.New(f.Snapshot(), h.ttl)
	if err := h.store.Create(r.Context(), d); err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "form draft created", logger.FormID(d.ID))
	h.respond(w, r, http.StatusCreated, viewOf(d.ID, f), nil)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	d, err := h.load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	f := h.newForm(r)
	f.Restore(d.State)
	h.respond(w, r, http.StatusOK, viewOf(d.ID, f), nil)
}

// eventFunc applies one event to a restored form. A non-nil detail is sent
// along with the state; a non-nil error aborts the request without saving.
type eventFunc func(ctx context.Context, f *form.Form[any], field string) (int, *ErrorDetail, error)

func (h *Handler) event(name string, apply eventFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		d, err := h.load(ctx, chi.URLParam(r, "id"))
		if err != nil {
			h.fail(w, r, err)
			return
		}

		ev, err := readEvent(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		f := h.newForm(r)
		f.Restore(d.State)
		if ev.Values != nil {
			h.bind(f, ev.Values)
		}

		status, detail, err := apply(ctx, f, ev.Field)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		d.Refresh(f.Snapshot(), h.ttl)
		if err := h.store.Update(ctx, d); err != nil {
			h.fail(w, r, err)
			return
		}

		h.logger.DebugContext(ctx, "form event handled",
			logger.FormID(d.ID),
			logger.Event(name),
			logger.Field(ev.Field),
		)
		h.respond(w, r, status, viewOf(d.ID, f), detail)
	}
}

func (h *Handler) focusIn(_ context.Context, f *form.Form[any], field string) (int, *ErrorDetail, error) {
	if field == "" {
		return 0, nil, ErrFieldRequired
	}
	f.HandleFocusIn(form.FieldEvent{Name: field})
	return http.StatusOK, nil, nil
}

func (h *Handler) focusOut(ctx context.Context, f *form.Form[any], field string) (int, *ErrorDetail, error) {
	if field == "" {
		return 0, nil, ErrFieldRequired
	}
	f.HandleFocusOut(ctx, form.FieldEvent{Name: field})
	return http.StatusOK, nil, nil
}

func (h *Handler) submit(ctx context.Context, f *form.Form[any], _ string) (int, *ErrorDetail, error) {
	for _, field := range f.Fields() {
		f.Touch(field)
	}

	valid, err := f.Submit(ctx)
	if err != nil {
		return 0, nil, err
	}
	if !valid {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_failed",
			Message: "the form has errors",
			Details: f.Errors().All,
		}, nil
	}
	return http.StatusOK, nil, nil
}

func (h *Handler) reset(_ context.Context, f *form.Form[any], _ string) (int, *ErrorDetail, error) {
	f.Reset()
	f.ClearErrors()
	return http.StatusOK, nil, nil
}

func (h *Handler) load(ctx context.Context, id string) (*draft.Draft, error) {
	if !draft.ValidID(id) {
		return nil, ErrFormNotFound
	}

	d, err := h.store.Get(ctx, id)
	switch {
	case errors.Is(err, draft.ErrDraftNotFound):
		return nil, errors.Join(ErrFormNotFound, err)
	case errors.Is(err, draft.ErrDraftExpired):
		return nil, errors.Join(ErrFormExpired, err)
	case err != nil:
		return nil, fmt.Errorf("load draft %s: %w", id, err)
	}
	return d, nil
}

// newForm builds an empty form from the definition with messages in the
// request's language.
func (h *Handler) newForm(r *http.Request) *form.Form[any] {
	opts := []form.Option{form.WithLogger(h.logger)}
	if h.catalog != nil {
		lang := h.catalog.Match(languageOf(r))
		opts = append(opts, form.WithMessageFunc(h.catalog.Message(lang)))
	}

	return form.New(form.Options[any]{
		InitialValues:    h.def.InitialValues,
		ValidationSchema: h.def.Schema,
		OnSubmit:         h.def.OnSubmit,
	}, opts...)
}

// bind merges the submitted values of known fields over the current ones.
func (h *Handler) bind(f *form.Form[any], submitted map[string]any) {
	values := f.Values()
	maps.Copy(values, sanitizer.Fields(binder.Only(submitted, f.Fields()), h.sanitizers))
	f.SetValues(values)
}

func languageOf(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return r.Header.Get("Accept-Language")
}
