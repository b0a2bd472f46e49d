// report/language.go
package report

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language selects the text used for labels, usage and error lines.
type Language int

const (
	English Language = iota
	Russian
)

// supported is indexed by Language.
var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

// ParseLanguage resolves a BCP 47 tag such as "en", "ru" or "ru-RU". An empty
// tag selects English, as does any well-formed tag with no supported match.
func ParseLanguage(tag string) (Language, error) {
	if tag == "" {
		return English, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return English, fmt.Errorf("invalid language %q: %w", tag, err)
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return English, nil
	}
	return Language(idx), nil
}

// String returns the base language code.
func (l Language) String() string {
	if int(l) < 0 || int(l) >= len(supported) {
		return "en"
	}
	base, _ := supported[l].Base()
	return base.String()
}
