package api

import (
	"net/http"
	"strconv"
)

// idFromPath parses the {id} path value as a base-10 external id.
func idFromPath(r *http.Request) (uint64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, badRequest("invalid id %q", raw)
	}
	return id, nil
}
