package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error is the body of every failed request.
type Error struct {
	Error string `json:"error"`
}

// Message acknowledges a request that returns no entity.
type Message struct {
	Message string `json:"message"`
}

// statusOf maps a service error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrReferenceNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidFilterValue),
		errors.Is(err, domain.ErrInvalidPagination),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError records err on the context for the request logger and writes
// the error body. Internal failures are not echoed to the client.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	code := statusOf(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = http.StatusText(code)
	}
	c.AbortWithStatusJSON(code, Error{Error: msg})
}

func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		writeError(c, fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidInput))
		return false
	}
	return true
}

func pathID(c *gin.Context, kind string) (primitive.ObjectID, bool) {
	id, err := domain.ParseID(kind, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return primitive.NilObjectID, false
	}
	return id, true
}
