// internal/app/system/paging/paging.go
package paging

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// Default list caps per collection.
const (
	CustomersLimit int64 = 100
	DefaultLimit   int64 = 200
)

// ErrInvalidLimit is returned for a limit that is not a positive integer.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// ParseLimit extracts the "limit" query parameter. Returns def when the
// parameter is absent or empty.
func ParseLimit(r *http.Request, def int64) (int64, error) {
	s := query.Get(r, "limit")
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, ErrInvalidLimit
	}
	return n, nil
}
