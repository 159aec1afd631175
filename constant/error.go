package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrValidation
	ErrInvalidTransactionStatus
	ErrUnsupportedProvider
	ErrInvalidOAuthState
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                  "success",
	ErrInternal:                 "error internal",
	ErrNotFound:                 "data not found",
	ErrInvalidRequest:           "invalid request",
	ErrUnauthorize:              "unauthorize request",
	ErrCredentialExists:         "email or phone already exists",
	ErrInvalidPassword:          "password invalid",
	ErrForbidden:                "forbidden",
	ErrValidation:               "validation failed",
	ErrInvalidTransactionStatus: "invalid transaction status",
	ErrUnsupportedProvider:      "unsupported login provider",
	ErrInvalidOAuthState:        "invalid or expired login state",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                  http.StatusOK,
	ErrInternal:                 http.StatusInternalServerError,
	ErrNotFound:                 http.StatusNotFound,
	ErrInvalidRequest:           http.StatusBadRequest,
	ErrUnauthorize:              http.StatusUnauthorized,
	ErrCredentialExists:         http.StatusBadRequest,
	ErrInvalidPassword:          http.StatusBadRequest,
	ErrForbidden:                http.StatusForbidden,
	ErrValidation:               http.StatusBadRequest,
	ErrInvalidTransactionStatus: http.StatusConflict,
	ErrUnsupportedProvider:      http.StatusNotFound,
	ErrInvalidOAuthState:        http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                  "0000",
	ErrInternal:                 "0001",
	ErrNotFound:                 "0002",
	ErrInvalidRequest:           "0003",
	ErrUnauthorize:              "0004",
	ErrCredentialExists:         "0005",
	ErrInvalidPassword:          "0006",
	ErrForbidden:                "0007",
	ErrValidation:               "0008",
	ErrInvalidTransactionStatus: "0009",
	ErrUnsupportedProvider:      "0010",
	ErrInvalidOAuthState:        "0011",
}
