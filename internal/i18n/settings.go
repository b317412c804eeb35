// Package i18n resolves the request language and translates the messages
// this service produces itself.
package i18n

const (
	DefaultLanguage = "ru"
	FallbackLng     = DefaultLanguage
	CookieName      = "i18next"
	DefaultNS       = "index"
)

// Languages lists the supported languages, fallback first.
var Languages = []string{FallbackLng, "en"}

// Options mirrors the namespace settings shared with the web client.
type Options struct {
	SupportedLngs []string `json:"supportedLngs"`
	FallbackLng   string   `json:"fallbackLng"`
	Lng           string   `json:"lng"`
	FallbackNS    string   `json:"fallbackNS"`
	DefaultNS     string   `json:"defaultNS"`
	NS            string   `json:"ns"`
}

// GetOptions returns the settings for lng and ns, defaulting either when empty.
func GetOptions(lng, ns string) Options {
	if lng == "" {
		lng = FallbackLng
	}
	if ns == "" {
		ns = DefaultNS
	}
	return Options{
		SupportedLngs: Languages,
		FallbackLng:   FallbackLng,
		Lng:           lng,
		FallbackNS:    DefaultNS,
		DefaultNS:     DefaultNS,
		NS:            ns,
	}
}
