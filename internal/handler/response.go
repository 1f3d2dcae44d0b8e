package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
)

// ErrorBody is the shared error payload. Successful responses carry
// their DTO directly instead of a wrapper.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse maps a domain error onto an HTTP status and payload.
// Chat-service failures keep their descriptive message so the caller
// can see what the provider reported; everything else unexpected stays
// a generic 500.
func ErrorResponse(c *app.RequestContext, err error) {
	getUserMessage := func(err error) string {
		if domainErr, ok := err.(*domain.DomainError); ok {
			return domainErr.UserMessage()
		}
		return "an error occurred"
	}

	switch {
	case domain.IsNotFound(err):
		c.JSON(consts.StatusNotFound, ErrorBody{
			Code:    "NOT_FOUND",
			Message: getUserMessage(err),
		})
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, ErrorBody{
			Code:    "INVALID_INPUT",
			Message: getUserMessage(err),
		})
	case domain.IsChatServiceError(err):
		c.JSON(consts.StatusInternalServerError, ErrorBody{
			Code:    "CHAT_SERVICE_ERROR",
			Message: getUserMessage(err),
		})
	default:
		c.JSON(consts.StatusInternalServerError, ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}

// BadRequestResponse returns a 400 with an explicit message, used for
// binding failures before a domain error exists.
func BadRequestResponse(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, ErrorBody{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}
