// Package handlers exposes the use cases over HTTP. Handlers translate
// payloads into use case requests and map domain errors onto status codes;
// no business rules live here.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	"github.com/takumi-dev/go-user-management/pkg/response"
)

// respondError maps a domain error onto its HTTP status. Unknown errors
// become an opaque 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	if ae := apperr.As(err); ae != nil {
		response.Error[any](c, ae.HTTPStatus, ae.Message, string(ae.Code))
		return
	}
	response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
}

// userPayload is the public representation of a user.
func userPayload(id, name, email, role string, isActive bool) gin.H {
	return gin.H{
		"id":        id,
		"name":      name,
		"email":     email,
		"role":      role,
		"is_active": isActive,
	}
}
