package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrGone                 = errors.New("session expired")
	ErrUnsupportedMediaType = errors.New("unsupported carrier encoding")
	ErrUnprocessable        = errors.New("unprocessable carrier")
	ErrInternalServerError  = errors.New("internal server error")
	ErrBadGateway           = errors.New("bad gateway")

	ErrEmptyAddress = errors.New("empty address")
)
