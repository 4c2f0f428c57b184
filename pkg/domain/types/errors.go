package types

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// Error tags classify failures at the point they happen. The HTTP layer
// maps tags to status codes; nothing below the controller knows about HTTP.
var (
	TagInvalidInput = goerr.NewTag("invalid_input")
	TagNotFound     = goerr.NewTag("not_found")
	TagUpstream     = goerr.NewTag("upstream_unavailable")
	TagConflict     = goerr.NewTag("publish_conflict")
	TagTooLarge     = goerr.NewTag("too_large")
	TagDuplicate    = goerr.NewTag("duplicate")
)

// HTTPStatus returns the response status code for an error based on its tag.
// Untagged errors are treated as internal failures.
func HTTPStatus(err error) int {
	switch {
	case goerr.HasTag(err, TagInvalidInput):
		return http.StatusBadRequest
	case goerr.HasTag(err, TagDuplicate):
		return http.StatusBadRequest
	case goerr.HasTag(err, TagNotFound):
		return http.StatusNotFound
	case goerr.HasTag(err, TagConflict):
		return http.StatusConflict
	case goerr.HasTag(err, TagUpstream):
		// Forward the upstream status when one was recorded and is
		// meaningful to the caller (e.g. 404 for an unknown repo).
		if v, ok := goerr.Values(err)["upstream_status"]; ok {
			if code, ok := v.(int); ok && code >= http.StatusBadRequest {
				return code
			}
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
