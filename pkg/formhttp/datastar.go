package formhttp

import (
	"net/http"
	"strings"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by DataStar requests.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam carries signals on DataStar GET requests.
	DataStarQueryParam = "datastar"
	// DataStarRequestHeader is set by the DataStar client on every request.
	DataStarRequestHeader = "Datastar-Request"
)

// IsDataStar reports whether r was issued by the DataStar client and expects
// its answer as a stream of signal patches.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}
