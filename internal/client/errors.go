package client

import "errors"

var (
	ErrNoServer            = errors.New("no server configured, set ADAPTER_ADDRESS")
	ErrNoPassword          = errors.New("no password given and stdin is not a terminal")
	ErrPasswordAndKeyFile  = errors.New("--password and --key-file are mutually exclusive")
	ErrInvalidKeyFile      = errors.New("invalid key file")
	ErrKeyFileExpired      = errors.New("key file session has expired, run exchange again")
	ErrMessageAndFile      = errors.New("--message and --message-file are mutually exclusive")
	ErrInvalidSuccessValue = errors.New("--success must be true or false")
)
