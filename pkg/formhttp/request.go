package formhttp

import (
	"errors"
	"net/http"

	"github.com/spf13/cast"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formstate/pkg/binder"
)

// eventRequest is what a client sends with an event: the field it concerns
// and the values currently entered.
type eventRequest struct {
	Field  string         `json:"field"`
	Values map[string]any `json:"values"`
}

// readEvent decodes an event from DataStar signals, a JSON body or a form
// body. JSON and form bodies may either nest values under "values" or send
// them flat next to "field". A request without a body is an empty event.
func readEvent(r *http.Request) (eventRequest, error) {
	var ev eventRequest

	if IsDataStar(r) {
		if err := datastar.ReadSignals(r, &ev); err != nil {
			return ev, errors.Join(ErrInvalidRequest, err)
		}
		return ev, nil
	}

	if r.ContentLength == 0 && r.Header.Get("Content-Type") == "" {
		return ev, nil
	}

	raw, err := binder.Values(r)
	if err != nil {
		return ev, err
	}

	ev.Field = cast.ToString(raw["field"])
	if nested, ok := raw["values"].(map[string]any); ok {
		ev.Values = nested
		return ev, nil
	}

	delete(raw, "field")
	if len(raw) > 0 {
		ev.Values = raw
	}
	return ev, nil
}
