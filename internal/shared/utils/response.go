package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "turnero/internal/shared/errors"
)

// ErrorInfo represents error information in API responses
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorBody is the envelope used for all error responses
type ErrorBody struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error"`
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Success: false,
		Error: &ErrorInfo{
			Type:    "error",
			Message: message,
		},
	})
}

// ErrorResponseWithError sends an error response based on error type.
// AppErrors map to their HTTP code; anything else is reduced to a generic
// 500 so internal detail never reaches the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	var statusCode int
	var errorInfo ErrorInfo

	if appErr := apperrors.GetAppError(err); appErr != nil {
		statusCode = appErr.Code
		errorInfo = ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		}
	} else {
		statusCode = http.StatusInternalServerError
		errorInfo = ErrorInfo{
			Type:    string(apperrors.ErrorTypeInternal),
			Message: "Internal server error occurred",
		}
	}

	c.JSON(statusCode, ErrorBody{
		Success: false,
		Error:   &errorInfo,
	})
}

// BindingErrorResponse sends a 400 for a request body that failed binding,
// translating validator field errors into a readable message.
func BindingErrorResponse(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				fields = append(fields, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
			case "max":
				fields = append(fields, fmt.Sprintf("%s exceeds maximum length of %s", strings.ToLower(fe.Field()), fe.Param()))
			default:
				fields = append(fields, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
			}
		}
		ErrorResponseWithError(c, apperrors.NewValidationError(strings.Join(fields, "; ")))
		return
	}

	ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
}
