package errorhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	pkgErrors "challenge-admin/pkg/errors"
	"challenge-admin/pkg/i18n"
)

// Resolve walks the table top to bottom; the first matching kind wins.
func (h *handler) Resolve(err error, tag language.Tag) Problem {
	p := i18n.Printer(tag)

	var (
		validationErr *pkgErrors.ValidationError
		fieldErrs     validator.ValidationErrors
		invalidArgErr *pkgErrors.InvalidArgumentError
		bindErr       *pkgErrors.BindingError
		syntaxErr     *json.SyntaxError
		typeErr       *json.UnmarshalTypeError
		numErr        *strconv.NumError
		notFoundErr   *pkgErrors.ResourceNotFoundError
		duplicateErr  *pkgErrors.DuplicateResourceError
		businessErr   *pkgErrors.BusinessLogicError
		tooManyErr    *pkgErrors.TooManyRequestsError
		httpErr       *pkgErrors.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		return Problem{
			Status:  http.StatusBadRequest,
			Code:    pkgErrors.CodeValidation,
			Message: i18n.Translate(p, i18n.MsgValidation),
			Details: translateAll(p, validationErr.Details),
			Cause:   err,
		}
	case errors.As(err, &fieldErrs):
		return Problem{
			Status:  http.StatusBadRequest,
			Code:    pkgErrors.CodeValidation,
			Message: i18n.Translate(p, i18n.MsgValidation),
			Details: fieldDetails(p, fieldErrs),
			Cause:   err,
		}
	case errors.As(err, &invalidArgErr):
		return h.invalidArgument(i18n.Translate(p, invalidArgErr.Message), err)
	case errors.As(err, &bindErr) && errors.Is(bindErr.Cause, io.EOF):
		return h.invalidArgument(i18n.Translate(p, i18n.MsgEmptyBody), err)
	case errors.As(err, &bindErr) && errors.Is(bindErr.Cause, io.ErrUnexpectedEOF),
		errors.As(err, &syntaxErr):
		return h.invalidArgument(i18n.Translate(p, i18n.MsgMalformedBody), err)
	case errors.As(err, &typeErr):
		return h.invalidArgument(i18n.Translate(p, i18n.MsgFieldInvalid, typeErr.Field), err)
	case errors.As(err, &numErr):
		return h.invalidArgument(numErr.Error(), err)
	case errors.Is(err, pkgErrors.ErrAuthenticationFailed):
		return Problem{
			Status:  http.StatusUnauthorized,
			Code:    pkgErrors.CodeAuthenticationFailed,
			Message: i18n.Translate(p, i18n.MsgAuthenticationFailed),
			Cause:   err,
		}
	case errors.Is(err, pkgErrors.ErrAccessDenied):
		return Problem{
			Status:  http.StatusForbidden,
			Code:    pkgErrors.CodeAccessDenied,
			Message: i18n.Translate(p, i18n.MsgAccessDenied),
			Cause:   err,
		}
	case errors.Is(err, pkgErrors.ErrAuthenticationRequired):
		return Problem{
			Status:  http.StatusUnauthorized,
			Code:    pkgErrors.CodeAuthenticationRequired,
			Message: i18n.Translate(p, i18n.MsgAuthenticationRequired),
			Cause:   err,
		}
	case errors.As(err, &notFoundErr):
		return Problem{
			Status:  http.StatusNotFound,
			Code:    pkgErrors.CodeResourceNotFound,
			Message: notFoundMessage(p, notFoundErr),
			Cause:   err,
		}
	case errors.As(err, &duplicateErr):
		return Problem{
			Status:  http.StatusConflict,
			Code:    pkgErrors.CodeDuplicateResource,
			Message: duplicateMessage(p, duplicateErr),
			Cause:   err,
		}
	case errors.As(err, &businessErr):
		return Problem{
			Status:  http.StatusUnprocessableEntity,
			Code:    pkgErrors.CodeBusinessRule,
			Message: i18n.Translate(p, businessErr.Message),
			Cause:   err,
		}
	case errors.As(err, &tooManyErr):
		return Problem{
			Status:  http.StatusTooManyRequests,
			Code:    pkgErrors.CodeTooManyRequests,
			Message: i18n.Translate(p, tooManyErr.Message),
			Cause:   err,
		}
	case errors.As(err, &httpErr):
		return Problem{
			Status:  httpErr.Status,
			Code:    httpErr.Code,
			Message: i18n.Translate(p, httpErr.Message),
			Cause:   err,
		}
	default:
		return Problem{
			Status:  http.StatusInternalServerError,
			Code:    pkgErrors.CodeInternal,
			Message: i18n.Translate(p, i18n.MsgInternal),
			Cause:   err,
		}
	}
}

func (h *handler) invalidArgument(msg string, cause error) Problem {
	return Problem{
		Status:  http.StatusBadRequest,
		Code:    pkgErrors.CodeInvalidArgument,
		Message: msg,
		Cause:   cause,
	}
}

func notFoundMessage(p *message.Printer, e *pkgErrors.ResourceNotFoundError) string {
	if e.Message != "" {
		return i18n.Translate(p, e.Message)
	}
	return i18n.Translate(p, i18n.MsgResourceNotFound, i18n.Translate(p, e.ResourceType), e.ID)
}

func duplicateMessage(p *message.Printer, e *pkgErrors.DuplicateResourceError) string {
	if e.Message != "" {
		return i18n.Translate(p, e.Message)
	}
	return i18n.Translate(p, i18n.MsgDuplicateResource, i18n.Translate(p, e.ResourceType), e.Field, e.Value)
}

func translateAll(p *message.Printer, msgs []string) []string {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = i18n.Translate(p, m)
	}
	return out
}
