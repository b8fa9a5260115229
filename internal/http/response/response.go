package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yungbote/bewear-backend/internal/platform/apierr"
)

type APIError struct {
	Message string             `json:"message"`
	Code    string             `json:"code,omitempty"`
	Fields  apierr.FieldErrors `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError maps a service error to the wire: structured errors keep
// their status, code and per-field messages; anything else becomes a 500.
func RespondAPIError(c *gin.Context, err error) {
	ae := apierr.From(err)
	c.JSON(ae.Status, ErrorEnvelope{
		Error: APIError{
			Message: ae.Error(),
			Code:    ae.Code,
			Fields:  ae.Fields,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
