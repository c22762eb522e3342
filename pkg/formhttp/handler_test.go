package formhttp_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/async"
	"github.com/dmitrymomot/formstate/pkg/draft"
	"github.com/dmitrymomot/formstate/pkg/formhttp"
	"github.com/dmitrymomot/formstate/pkg/messages"
	"github.com/dmitrymomot/formstate/pkg/sanitizer"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

func signupDefinition() formhttp.Definition {
	return formhttp.Definition{
		InitialValues: map[string]any{"email": "", "age": ""},
		Schema: map[string]validator.Schema[any]{
			"email": validator.Tags[any]("required;email"),
			"age":   validator.Tags[any]("required;min:18"),
		},
	}
}

func newRouter(t *testing.T, def formhttp.Definition, opts ...formhttp.Option) http.Handler {
	t.Helper()
	store := draft.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	return formhttp.NewHandler(def, store, opts...).Routes()
}

func do(t *testing.T, h http.Handler, method, path, contentType, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) formhttp.Response {
	t.Helper()
	var resp formhttp.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func create(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/", "", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode(t, rec)
	require.NotNil(t, resp.Data)
	return resp.Data.ID
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()

	h := newRouter(t, signupDefinition())
	rec := do(t, h, http.MethodPost, "/", "", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	require.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
	assert.True(t, draft.ValidID(resp.Data.ID))
	assert.Equal(t, map[string]any{"email": "", "age": ""}, resp.Data.Values)
	assert.Equal(t, map[string]int{"email": 0, "age": 0}, resp.Data.Errors.Count)
	assert.Equal(t, map[string]bool{"email": false, "age": false}, resp.Data.Touched)
	assert.Equal(t, map[string]bool{"form": false, "email": false, "age": false}, resp.Data.Pending)
	assert.True(t, resp.Data.Valid)
}

func TestHandler_Show(t *testing.T) {
	t.Parallel()

	h := newRouter(t, signupDefinition())
	id := create(t, h)

	t.Run("existing draft", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/"+id, "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id, decode(t, rec).Data.ID)
	})

	t.Run("unknown draft", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/"+uuid.NewString(), "", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		resp := decode(t, rec)
		assert.Nil(t, resp.Data)
		assert.Equal(t, "not_found", resp.Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/not-a-uuid", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_ExpiredDraft(t *testing.T) {
	t.Parallel()

	h := newRouter(t, signupDefinition(), formhttp.WithDraftTTL(20*time.Millisecond))
	id := create(t, h)
	time.Sleep(50 * time.Millisecond)

	rec := do(t, h, http.MethodGet, "/"+id, "", "")
	require.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "expired", decode(t, rec).Error.Code)
}

func TestHandler_FocusOut(t *testing.T) {
	t.Parallel()

	t.Run("validates the field and persists the result", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, signupDefinition())
		id := create(t, h)

		rec := do(t, h, http.MethodPost, "/"+id+"/focusout", "application/json", `{"field":"email"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode(t, rec)
		assert.Equal(t, "field is required", resp.Data.Errors.First["email"])
		assert.Empty(t, resp.Data.Errors.First["age"], "other fields are not validated")
		assert.False(t, resp.Data.Valid)

		rec = do(t, h, http.MethodGet, "/"+id, "", "")
		assert.Equal(t, []string{"field is required"}, decode(t, rec).Data.Errors.All["email"])
	})

	t.Run("applies submitted values", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, signupDefinition())
		id := create(t, h)

		rec := do(t, h, http.MethodPost, "/"+id+"/focusout", "application/x-www-form-urlencoded", "field=age&age=16&unknown=x")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode(t, rec)
		assert.Equal(t, "must be at least 18", resp.Data.Errors.First["age"])
		assert.Equal(t, "16", resp.Data.Values["age"])
		assert.NotContains(t, resp.Data.Values, "unknown")
		assert.NotContains(t, resp.Data.Values, "field")
	})

	t.Run("sanitizes before validating", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, signupDefinition(), formhttp.WithSanitizers(map[string]func(string) string{
			"email": sanitizer.NormalizeEmail,
		}))
		id := create(t, h)

		rec := do(t, h, http.MethodPost, "/"+id+"/focusout", "application/json",
			`{"field":"email","values":{"email":"  Bob@Example.COM "}}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode(t, rec)
		assert.Equal(t, "bob@example.com", resp.Data.Values["email"])
		assert.Zero(t, resp.Data.Errors.Count["email"])
	})

	t.Run("requires a field", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, signupDefinition())
		id := create(t, h)

		rec := do(t, h, http.MethodPost, "/"+id+"/focusout", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_request", decode(t, rec).Error.Code)
	})

	t.Run("rejects unsupported bodies", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, signupDefinition())
		id := create(t, h)

		rec := do(t, h, http.MethodPost, "/"+id+"/focusout", "text/plain", "field=email")
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestHandler_FocusIn(t *testing.T) {
	t.Parallel()

	h := newRouter(t, signupDefinition())
	id := create(t, h)

	rec := do(t, h, http.MethodPost, "/"+id+"/focusout", "application/json", `{"field":"email"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, decode(t, rec).Data.Valid)

	rec = do(t, h, http.MethodPost, "/"+id+"/focusin", "application/json", `{"field":"email"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Empty(t, resp.Data.Errors.All["email"])
	assert.True(t, resp.Data.Touched["email"])
	assert.False(t, resp.Data.Touched["age"])
	assert.True(t, resp.Data.Valid)
}

func TestHandler_Submit(t *testing.T) {
	t.Parallel()

	t.Run("invalid form answers 422 with details", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, signupDefinition())
		id := create(t, h)

		rec := do(t, h, http.MethodPost, "/"+id+"/submit", "application/json",
			`{"values":{"email":"bob@example.com","age":"16"}}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		resp := decode(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "validation_failed", resp.Error.Code)
		assert.Equal(t, []string{"must be at least 18"}, resp.Error.Details["age"])
		assert.Empty(t, resp.Error.Details["email"])
		assert.False(t, resp.Data.Valid)
		assert.False(t, resp.Data.Pending["form"])
		assert.True(t, resp.Data.Touched["email"])
		assert.True(t, resp.Data.Touched["age"])
	})

	t.Run("valid form calls OnSubmit", func(t *testing.T) {
		t.Parallel()

		var (
			mu  sync.Mutex
			got map[string]any
		)
		def := signupDefinition()
		def.OnSubmit = func(_ context.Context, values map[string]any, _ func() bool, _ func(context.Context) *async.Future[bool]) error {
			mu.Lock()
			defer mu.Unlock()
			got = values
			return nil
		}
		h := newRouter(t, def)
		id := create(t, h)

		rec := do(t, h, http.MethodPost, "/"+id+"/submit", "application/json",
			`{"values":{"email":"bob@example.com","age":21}}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, decode(t, rec).Data.Valid)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "bob@example.com", got["email"])
		assert.EqualValues(t, 21, got["age"])
	})

	t.Run("callback failure answers 500", func(t *testing.T) {
		t.Parallel()
		def := signupDefinition()
		def.OnSubmit = func(context.Context, map[string]any, func() bool, func(context.Context) *async.Future[bool]) error {
			return errors.New("smtp down")
		}
		h := newRouter(t, def)
		id := create(t, h)

		rec := do(t, h, http.MethodPost, "/"+id+"/submit", "application/json",
			`{"values":{"email":"bob@example.com","age":"30"}}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, "submit_failed", resp.Error.Code)
		assert.NotContains(t, resp.Error.Message, "smtp")
	})
}

func TestHandler_Reset(t *testing.T) {
	t.Parallel()

	h := newRouter(t, signupDefinition())
	id := create(t, h)

	rec := do(t, h, http.MethodPost, "/"+id+"/submit", "application/json", `{"values":{"email":"nope","age":"3"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/"+id+"/reset", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, map[string]any{"email": "", "age": ""}, resp.Data.Values)
	assert.Equal(t, map[string]bool{"email": false, "age": false}, resp.Data.Touched)
	assert.True(t, resp.Data.Valid)
}

func TestHandler_Catalog(t *testing.T) {
	t.Parallel()

	catalog, err := messages.NewDefault(messages.WithDefaultLanguage("en"))
	require.NoError(t, err)
	h := newRouter(t, signupDefinition(), formhttp.WithCatalog(catalog))
	id := create(t, h)

	tests := []struct {
		name    string
		path    string
		headers []string
		want    string
	}{
		{"default language", "/" + id + "/focusout", nil, "email is required"},
		{"accept language", "/" + id + "/focusout", []string{"Accept-Language", "de-DE,de;q=0.9"}, "email ist erforderlich"},
		{"query overrides header", "/" + id + "/focusout?lang=en", []string{"Accept-Language", "de"}, "email is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, "application/json", `{"field":"email"}`, tt.headers...)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, decode(t, rec).Data.Errors.First["email"])
		})
	}
}

func TestHandler_DataStar(t *testing.T) {
	t.Parallel()

	h := newRouter(t, signupDefinition())
	id := create(t, h)

	rec := do(t, h, http.MethodPost, "/"+id+"/focusout", "application/json",
		`{"field":"age","values":{"age":"12"},"unrelated":{"x":1}}`,
		"Datastar-Request", "true",
		"Accept", "text/event-stream",
	)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `"id":"`+id+`"`)
	assert.Contains(t, body, "must be at least 18")

	rec = do(t, h, http.MethodGet, "/"+id, "", "")
	assert.Equal(t, "12", decode(t, rec).Data.Values["age"], "signal values are persisted")
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    bool
	}{
		{"plain request", "/", nil, false},
		{"request header", "/", map[string]string{"Datastar-Request": "true"}, true},
		{"accept header", "/", map[string]string{"Accept": "text/event-stream"}, true},
		{"query signals", "/?datastar=%7B%7D", nil, true},
		{"json accept", "/", map[string]string{"Accept": "application/json"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, formhttp.IsDataStar(req))
		})
	}
}
