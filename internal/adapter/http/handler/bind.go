package handler

import (
	"errors"
	"io"
	"net/http"

	"crypto-bot-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into req.
func bindJSON(c *gin.Context, req interface{}) error {
	return bindError(c.ShouldBindJSON(req))
}

// bindOptionalJSON is bindJSON for endpoints where an empty body means an
// empty object.
func bindOptionalJSON(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return bindError(err)
}

func bindError(err error) error {
	if err == nil {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.ErrBodyTooLarge(tooLarge.Limit)
	}
	return apperror.ErrMalformedBody(err)
}
