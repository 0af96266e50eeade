package handlers

import (
	"net/http"
	"strconv"

	"invenBack/internal/models"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// intQueryParam parses an integer query parameter, falling back to def
// when the parameter is absent or malformed.
func intQueryParam(r *http.Request, name string, def int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}

// requesterFromContext rebuilds the claims the JWT middleware stored on
// the request context. The second return is false when the request never
// went through authentication.
func requesterFromContext(r *http.Request) (models.Claims, bool) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		return models.Claims{}, false
	}
	username, _ := r.Context().Value("username").(string)
	role, ok := r.Context().Value("role").(models.Role)
	if !ok {
		return models.Claims{}, false
	}
	return models.Claims{UserID: userID, Username: username, Role: role}, true
}
