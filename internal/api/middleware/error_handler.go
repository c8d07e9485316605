package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tambourine/internal/api/errors"
)

// ErrorHandler recovers panics and answers with an APIError body
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
			apiErr.RequestID = requestID
		case error:
			logger.Error("internal_server_error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = &errors.APIError{
				Kind:      errors.KindInternal,
				Message:   "Internal server error",
				RequestID: requestID,
			}
		default:
			logger.Error("unknown_panic",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
			)
			apiErr = &errors.APIError{
				Kind:      errors.KindInternal,
				Message:   "Internal server error",
				RequestID: requestID,
			}
		}

		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError is a helper function for handlers to return errors. Non-API
// errors are re-panicked for ErrorHandler.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if apiErr, ok := err.(*errors.APIError); ok {
		apiErr.RequestID = GetRequestID(c)
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
		return
	}

	panic(err)
}

// NotFound answers unmatched routes with an APIError body
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleError(c, errors.NotFound("route "+c.Request.URL.Path))
	}
}

// MethodNotAllowed answers known routes hit with the wrong method
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleError(c, errors.MethodNotAllowed(c.Request.Method))
	}
}
