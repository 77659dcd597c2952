package model

import "fmt"

const (
	CodeNotFound        = "NOT_FOUND"
	CodeEmptyField      = "EMPTY_FIELD"
	CodeProviderFailure = "PROVIDER_ERROR"

	MsgNotFound        = "resource not found"
	MsgEmptyField      = "field is empty"
	MsgProviderFailure = "text generation provider request failed"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewNotFoundError() *APIError {
	return &APIError{
		Code:    CodeNotFound,
		Message: MsgNotFound,
	}
}

func NewEmptyFieldError(field string) *APIError {
	return &APIError{
		Code:    CodeEmptyField,
		Message: fmt.Sprintf("%s %s", field, MsgEmptyField),
	}
}

func NewProviderError() *APIError {
	return &APIError{
		Code:    CodeProviderFailure,
		Message: MsgProviderFailure,
	}
}
