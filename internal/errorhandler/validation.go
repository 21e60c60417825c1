package errorhandler

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/message"

	"challenge-admin/pkg/i18n"
)

// RegisterJSONFieldNames makes gin's validator report fields by their json
// (or form) tag, so details read "email is required" rather than "Email".
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tagKey := range []string{"json", "form", "uri"} {
			name := strings.SplitN(f.Tag.Get(tagKey), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}

func fieldDetails(p *message.Printer, errs validator.ValidationErrors) []string {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fieldDetail(p, fe))
	}
	return details
}

func fieldDetail(p *message.Printer, fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return i18n.Translate(p, i18n.MsgFieldRequired, field)
	case "email":
		return i18n.Translate(p, i18n.MsgFieldEmail, field)
	case "min":
		return i18n.Translate(p, i18n.MsgFieldMin, field, fe.Param())
	case "max":
		return i18n.Translate(p, i18n.MsgFieldMax, field, fe.Param())
	case "gte":
		return i18n.Translate(p, i18n.MsgFieldGte, field, fe.Param())
	case "oneof":
		return i18n.Translate(p, i18n.MsgFieldOneOf, field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return i18n.Translate(p, i18n.MsgFieldDate, field)
	default:
		return i18n.Translate(p, i18n.MsgFieldInvalid, field)
	}
}
