package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fixed messages of the error handler.
const (
	MsgValidation             = "Please check your input."
	MsgAuthenticationFailed   = "The email or password is incorrect."
	MsgAccessDenied           = "You do not have permission to access this resource."
	MsgAuthenticationRequired = "Authentication is required."
	MsgInternal               = "An internal server error occurred. Please try again later."
	MsgEmptyBody              = "Request body is required."
	MsgMalformedBody          = "Request body is malformed."
	MsgRouteNotFound          = "The requested path does not exist."
	MsgMethodNotAllowed       = "The request method is not supported for this path."
	MsgTooManyRequests        = "Too many requests. Please try again later."
	MsgServiceUnavailable     = "The service is temporarily unavailable."
	MsgTokenExpired           = "Your session has expired. Please log in again."

	// Templates; arguments are pre-stringified so the printer does not
	// apply number grouping to ids.
	MsgResourceNotFound  = "%s not found. (ID: %s)"
	MsgDuplicateResource = "%s already exists. (%s: %s)"
)

// Field validation templates, keyed by validator tag.
const (
	MsgFieldRequired = "%s is required."
	MsgFieldEmail    = "%s must be a valid email address."
	MsgFieldMin      = "%s must be at least %s characters."
	MsgFieldMax      = "%s must be at most %s characters."
	MsgFieldGte      = "%s must be greater than or equal to %s."
	MsgFieldOneOf    = "%s must be one of [%s]."
	MsgFieldDate     = "%s must be a date in yyyy-MM-dd format."
	MsgFieldInvalid  = "%s is invalid."
)

// Resource and field names used inside templates.
const (
	ResourceUser      = "user"
	ResourceEmail     = "email"
	ResourceChallenge = "challenge"
)

// Domain messages.
const (
	MsgInvalidID               = "The id must be a positive integer."
	MsgInvalidDateRange        = "The end date must not be before the start date."
	MsgInvalidStatusFilter     = "Unknown challenge status filter."
	MsgAlreadyParticipating    = "You are already participating in this challenge."
	MsgNotParticipating        = "You are not participating in this challenge."
	MsgNotRecruiting           = "This challenge is not recruiting participants."
	MsgInvalidStatusTransition = "The challenge cannot move to the requested status."
	MsgAuthorCannotParticipate = "The author cannot participate in their own challenge."
)

var translations = map[string]map[language.Tag]string{
	MsgValidation:             {Korean: "입력 정보를 확인해주세요."},
	MsgAuthenticationFailed:   {Korean: "이메일 또는 비밀번호가 올바르지 않습니다."},
	MsgAccessDenied:           {Korean: "접근 권한이 없습니다."},
	MsgAuthenticationRequired: {Korean: "인증이 필요합니다."},
	MsgInternal:               {Korean: "서버 내부 오류가 발생했습니다. 잠시 후 다시 시도해주세요."},
	MsgEmptyBody:              {Korean: "요청 본문이 필요합니다."},
	MsgMalformedBody:          {Korean: "요청 본문의 형식이 올바르지 않습니다."},
	MsgRouteNotFound:          {Korean: "요청한 경로가 존재하지 않습니다."},
	MsgMethodNotAllowed:       {Korean: "지원하지 않는 요청 방식입니다."},
	MsgTooManyRequests:        {Korean: "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."},
	MsgServiceUnavailable:     {Korean: "일시적으로 서비스를 이용할 수 없습니다."},
	MsgTokenExpired:           {Korean: "로그인이 만료되었습니다. 다시 로그인해주세요."},
	MsgResourceNotFound:       {Korean: "%s를 찾을 수 없습니다. (ID: %s)"},
	MsgDuplicateResource:      {Korean: "이미 존재하는 %s입니다. (%s: %s)"},

	MsgFieldRequired: {Korean: "%s은(는) 필수 입력 항목입니다."},
	MsgFieldEmail:    {Korean: "%s은(는) 올바른 이메일 형식이어야 합니다."},
	MsgFieldMin:      {Korean: "%s은(는) 최소 %s자 이상이어야 합니다."},
	MsgFieldMax:      {Korean: "%s은(는) 최대 %s자까지 입력할 수 있습니다."},
	MsgFieldGte:      {Korean: "%s은(는) %s 이상이어야 합니다."},
	MsgFieldOneOf:    {Korean: "%s은(는) [%s] 중 하나여야 합니다."},
	MsgFieldDate:     {Korean: "%s은(는) yyyy-MM-dd 형식의 날짜여야 합니다."},
	MsgFieldInvalid:  {Korean: "%s의 값이 올바르지 않습니다."},

	ResourceUser:      {Korean: "사용자"},
	ResourceEmail:     {Korean: "이메일"},
	ResourceChallenge: {Korean: "챌린지"},

	MsgInvalidID:               {Korean: "ID는 양의 정수여야 합니다."},
	MsgInvalidDateRange:        {Korean: "종료일은 시작일보다 빠를 수 없습니다."},
	MsgInvalidStatusFilter:     {Korean: "알 수 없는 챌린지 상태입니다."},
	MsgAlreadyParticipating:    {Korean: "이미 참여 중인 챌린지입니다."},
	MsgNotParticipating:        {Korean: "참여하지 않은 챌린지입니다."},
	MsgNotRecruiting:           {Korean: "모집 중인 챌린지가 아닙니다."},
	MsgInvalidStatusTransition: {Korean: "요청한 상태로 변경할 수 없는 챌린지입니다."},
	MsgAuthorCannotParticipate: {Korean: "작성자는 자신의 챌린지에 참여할 수 없습니다."},
}

var known = map[string]struct{}{}

func init() {
	for key, byTag := range translations {
		known[key] = struct{}{}
		// en-US text is the key itself.
		if err := message.SetString(English, key, key); err != nil {
			panic(err)
		}
		for tag, msg := range byTag {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}
