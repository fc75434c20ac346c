package validators

import (
	"sort"
	"strings"
)

// FieldErrors is a field-to-message mapping produced by [Schema.Validate].
// It implements error so it can travel through the service layer and be
// unwrapped at the HTTP edge into a structured response body.
type FieldErrors map[string]string

// Error renders the mapping as a single deterministic string,
// fields sorted by name.
func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+f[name])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
