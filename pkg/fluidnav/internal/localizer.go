package internal

import (
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/locale"
)

var localizer *locale.Localizer

// SetLocale switches the strings fluidnav draws to lang.
func SetLocale(lang string) error {
	l, err := locale.New(lang)
	if err != nil {
		return err
	}
	localizer = l
	return nil
}

// Localize returns the message for id in the current locale.
func Localize(id string) string {
	if localizer == nil {
		if err := SetLocale("en"); err != nil {
			return id
		}
	}
	return localizer.Text(id)
}

// LocalizePlural returns the plural form of id for count.
func LocalizePlural(id string, count int) string {
	if localizer == nil {
		if err := SetLocale("en"); err != nil {
			return id
		}
	}
	return localizer.Plural(id, count)
}
