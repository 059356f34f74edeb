// Package locale provides the localized strings fluidnav draws itself,
// such as the back button label.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	MessageBack         = "Back"
	MessageClose        = "Close"
	MessageHome         = "Home"
	MessageDepthSummary = "DepthSummary"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// Localizer resolves message IDs for one language.
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewBundle loads the embedded message files plus any extra files in extra.
func NewBundle(extra ...fs.FS) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	sources := append([]fs.FS{messageFiles}, extra...)
	for _, fsys := range sources {
		files, err := fs.Glob(fsys, "messages/*.toml")
		if err != nil {
			return nil, fmt.Errorf("locale: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
				return nil, fmt.Errorf("locale: load %s: %w", path.Base(file), err)
			}
		}
	}

	return bundle, nil
}

// New returns a Localizer for lang, falling back to English for anything
// the bundle does not carry.
func New(lang string) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return NewWithBundle(bundle, lang), nil
}

// NewWithBundle returns a Localizer for lang over an existing bundle.
func NewWithBundle(bundle *i18n.Bundle, lang string) *Localizer {
	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _, _ := matcher.Match(language.Make(lang))
	base, _ := tag.Base()

	return &Localizer{
		localizer: i18n.NewLocalizer(bundle, base.String(), language.English.String()),
		tag:       tag,
	}
}

// Tag is the language that was matched.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Text returns the message for id, or id itself when it is unknown.
func (l *Localizer) Text(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Plural returns the plural form of id for count, with Count available to the template.
func (l *Localizer) Plural(id string, count int) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		return id
	}
	return msg
}
