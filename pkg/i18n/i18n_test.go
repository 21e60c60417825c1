package i18n_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"challenge-admin/pkg/i18n"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{"default", "/", "", "ko-KR"},
		{"accept english", "/", "en-US,en;q=0.9", "en-US"},
		{"accept korean", "/", "ko", "ko-KR"},
		{"accept unsupported", "/", "fr-FR", "ko-KR"},
		{"query wins", "/?lang=en", "ko-KR", "en-US"},
		{"bad query ignored", "/?lang=!!", "en", "en-US"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.want, i18n.Resolve(r, i18n.Korean).String())
		})
	}
}

func TestResolveNilRequest(t *testing.T) {
	assert.Equal(t, i18n.English, i18n.Resolve(nil, i18n.English))
}

func TestTranslate(t *testing.T) {
	ko := i18n.Printer(i18n.Korean)
	en := i18n.Printer(i18n.English)

	assert.Equal(t, "입력 정보를 확인해주세요.", i18n.Translate(ko, i18n.MsgValidation))
	assert.Equal(t, i18n.MsgValidation, i18n.Translate(en, i18n.MsgValidation))

	assert.Equal(t, "챌린지를 찾을 수 없습니다. (ID: 1234)",
		i18n.Translate(ko, i18n.MsgResourceNotFound, i18n.Translate(ko, i18n.ResourceChallenge), "1234"))
	assert.Equal(t, "challenge not found. (ID: 1234)",
		i18n.Translate(en, i18n.MsgResourceNotFound, i18n.ResourceChallenge, "1234"))

	// Unregistered text is returned verbatim, even with verbs in it.
	assert.Equal(t, "50% off", i18n.Translate(ko, "50% off"))
}

func TestParseTag(t *testing.T) {
	tag, ok := i18n.ParseTag("en")
	assert.True(t, ok)
	assert.Equal(t, i18n.English, tag)

	_, ok = i18n.ParseTag("")
	assert.False(t, ok)
}
