package locale

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBackLabel(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "Back"},
		{"es-MX", "Atrás"},
		{"fr", "Retour"},
		{"ja", "Back"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			l, err := New(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Text(MessageBack))
		})
	}
}

func TestPlural(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "1 screen pushed", l.Plural(MessageDepthSummary, 1))
	assert.Equal(t, "3 screens pushed", l.Plural(MessageDepthSummary, 3))
}

func TestUnknownMessageFallsBackToID(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "Missing", l.Text("Missing"))
	assert.Equal(t, language.English, l.Tag())
}

func TestExtraMessageFiles(t *testing.T) {
	extra := fstest.MapFS{
		"messages/active.de.toml": &fstest.MapFile{Data: []byte("[Back]\nother = \"Zurück\"\n")},
	}

	bundle, err := NewBundle(extra)
	require.NoError(t, err)

	l := NewWithBundle(bundle, "de")
	assert.Equal(t, "Zurück", l.Text(MessageBack))
	assert.Equal(t, "Close", l.Text(MessageClose))
}
