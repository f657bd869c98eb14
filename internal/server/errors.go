package server

import "errors"

var (
	errNoAddressProvided = errors.New("no HTTP address provided")
)
