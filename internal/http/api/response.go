package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr        = "INTERNAL_ERROR"
	ErrValidationErr      = "VALIDATION_ERROR"
	ErrBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeAuth           = "AUTH_ERROR"
	ErrCodeInvalidAddress = "INVALID_ADDRESS"
	ErrCodeUpstream       = "UPSTREAM_ERROR"
	ErrCodeScoring        = "SCORING_UNAVAILABLE"
	ErrCodeSelfLike       = "SELF_LIKE"
	ErrCodeAlreadyLiked   = "ALREADY_LIKED"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be a valid email", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
