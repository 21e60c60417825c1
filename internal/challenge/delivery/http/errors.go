package http

import (
	"errors"

	"challenge-admin/internal/challenge"
	pkgErrors "challenge-admin/pkg/errors"
	"challenge-admin/pkg/i18n"
)

// mapError translates challenge use-case errors into pkg/errors kinds.
// id is the challenge the request addressed, 0 when none.
func (h *handler) mapError(err error, id int64) error {
	switch {
	case errors.Is(err, challenge.ErrChallengeNotFound):
		return pkgErrors.NewResourceNotFoundByID(i18n.ResourceChallenge, id)
	case errors.Is(err, challenge.ErrNotAuthor):
		return pkgErrors.NewAccessDenied(err)
	case errors.Is(err, challenge.ErrInvalidDateRange):
		return pkgErrors.NewInvalidArgument(i18n.MsgInvalidDateRange)
	case errors.Is(err, challenge.ErrInvalidStatus):
		return pkgErrors.NewInvalidArgument(i18n.MsgInvalidStatusFilter)
	case errors.Is(err, challenge.ErrInvalidTransition):
		return pkgErrors.NewBusinessLogic(i18n.MsgInvalidStatusTransition)
	case errors.Is(err, challenge.ErrNotRecruiting):
		return pkgErrors.NewBusinessLogic(i18n.MsgNotRecruiting)
	case errors.Is(err, challenge.ErrAlreadyParticipating):
		return pkgErrors.NewBusinessLogic(i18n.MsgAlreadyParticipating)
	case errors.Is(err, challenge.ErrNotParticipating):
		return pkgErrors.NewBusinessLogic(i18n.MsgNotParticipating)
	case errors.Is(err, challenge.ErrAuthorCannotParticipate):
		return pkgErrors.NewBusinessLogic(i18n.MsgAuthorCannotParticipate)
	default:
		return err
	}
}
