package views

import (
	"errors"

	"github.com/dmitrijs2005/artgallery/internal/client/client"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

// Describe turns err into one line for the user: the server's message for
// rejected requests, the network cause for transport failures, the
// validation text for input errors, and fallback for anything else. A
// fallback of "" means err.Error().
func Describe(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var appErr *client.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	var netErr *client.NetworkError
	if errors.As(err, &netErr) {
		return "Network error: " + netErr.Err.Error()
	}
	var valErr *common.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error()
	}
	switch {
	case errors.Is(err, common.ErrNotLoggedIn):
		return "Please log in first."
	case errors.Is(err, ErrQuantityTooLow):
		return "Quantity must be at least 1."
	}
	if fallback == "" {
		return err.Error()
	}
	return fallback
}
