package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	out := make([]language.Tag, 0, len(Languages))
	for _, l := range Languages {
		out = append(out, language.MustParse(l))
	}
	return out
}

// Supported reports whether lng is one of Languages.
func Supported(lng string) bool {
	for _, l := range Languages {
		if l == lng {
			return true
		}
	}
	return false
}

// Match picks the best supported language for the given preferences, which
// may be Accept-Language values or bare tags.
func Match(prefs ...string) string {
	var wanted []language.Tag
	for _, p := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		wanted = append(wanted, parsed...)
	}
	if len(wanted) == 0 {
		return FallbackLng
	}
	_, idx, conf := matcher.Match(wanted...)
	if conf == language.No {
		return FallbackLng
	}
	return Languages[idx]
}

// Detect resolves the language of a request: the i18next cookie wins, then
// Accept-Language, then the fallback.
func Detect(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && Supported(c.Value) {
		return c.Value
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		return Match(h)
	}
	return FallbackLng
}
