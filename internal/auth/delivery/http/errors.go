package http

import (
	"errors"

	"challenge-admin/internal/auth"
	pkgErrors "challenge-admin/pkg/errors"
	"challenge-admin/pkg/i18n"
)

// mapError translates auth use-case errors into pkg/errors kinds.
// Unknown errors pass through and render as 500.
func (h *handler) mapError(err error, email string) error {
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		return pkgErrors.NewDuplicateResourceByField(i18n.ResourceEmail, "email", email)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewAuthenticationFailed(err)
	case errors.Is(err, auth.ErrTooManyAttempts):
		return pkgErrors.NewTooManyRequests(i18n.MsgTooManyRequests)
	case errors.Is(err, auth.ErrUserNotFound):
		return pkgErrors.NewAuthenticationRequired(err)
	default:
		return err
	}
}
