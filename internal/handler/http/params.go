package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// idParam parses the named chi URL parameter as an int64 resource ID.
// Non-numeric values cannot address any resource, so the caller treats a
// failed parse the same as a missing row.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// assignedOnlyParam reports whether the assigned_only query flag is set.
func assignedOnlyParam(r *http.Request) bool {
	switch r.URL.Query().Get("assigned_only") {
	case "1", "true":
		return true
	}
	return false
}

// idListParam parses a comma-separated list of IDs from the named query
// parameter ("?tags=1,2,3"). Returns ok=false when any entry is not a
// positive integer.
func idListParam(r *http.Request, name string) ([]int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id < 1 {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
