// Package locale maps languages to bootstrap-select locales and provides the
// translator seam used for button and option labels.
package locale

import "strings"

// selectLocales maps two-letter language prefixes to bootstrap-select i18n
// bundle names. zh_TW has no mapping because the prefix is shared with zh_CN.
var selectLocales = map[string]string{
	"cs": "cs_CZ",
	"de": "de_DE",
	"en": "en_US",
	"es": "es_CL",
	"eu": "eu",
	"fr": "fr_FR",
	"it": "it_IT",
	"nl": "nl_NL",
	"pl": "pl_PL",
	"pt": "pt_BR",
	"ro": "ro_RO",
	"ru": "ru_RU",
	"ua": "ua_UA",
	"zh": "zh_CN",
}

// Language returns the lower-cased two-letter prefix of a language tag such
// as "de", "de_DE" or "de-CH".
func Language(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if len(tag) < 2 {
		return ""
	}
	return tag[:2]
}

// SelectLocale returns the bootstrap-select locale for language. Unmapped
// languages report false.
func SelectLocale(language string) (string, bool) {
	name, ok := selectLocales[Language(language)]
	return name, ok
}
