package errors

import "github.com/muhammadheryan/car-showroom/constant"

type CustomError struct {
	errType constant.ErrorType
	fields  map[string]string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Fields returns field-level messages for validation errors, keyed by the json field name.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetValidationError(fields map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		fields:  fields,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
