package errx

import (
	"errors"
	"net/http"
)

// ErrNotConfigured signals that the model gateway has no usable credential.
// It is a permanent, process-lifetime condition, distinct from a per-call
// gateway failure.
var ErrNotConfigured = errors.New(NotConfiguredMessage)

// WrapGateway maps a provider or network fault to the unified Error type.
func WrapGateway(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, GatewayErrorMessage)
}

// IsNotConfigured reports whether the error chain contains ErrNotConfigured.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}
