package helpers

import (
	"net/http"

	"artwalls/internal/domain"
)

// ParseRequestFilter reads the optional kind and status query parameters for
// request list endpoints. Unknown values are returned as-is; the repository
// matches them against nothing rather than erroring.
func ParseRequestFilter(r *http.Request) domain.RequestFilter {
	q := r.URL.Query()
	return domain.RequestFilter{
		Kind:   domain.RequestKind(q.Get("kind")),
		Status: domain.RequestStatus(q.Get("status")),
	}
}
