package api

import (
	"net/http"

	"car-rental/internal/handler/httpresp"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func principalOrAbort(c *gin.Context) (usecase.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		// RequireAuth did not run
		httpresp.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return usecase.Principal{}, false
	}
	return principal, true
}

func uuidParamOrAbort(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httpresp.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+label+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

func cursorFrom(after string) *queries.Cursor {
	if after == "" {
		return nil
	}
	return &queries.Cursor{After: after}
}
