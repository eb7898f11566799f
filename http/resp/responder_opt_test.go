package resp

import (
	"bytes"
	"log"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost/http/template"
	"github.com/xy-planning-network/signpost/http/template/templatetest"
	"github.com/xy-planning-network/signpost/logger"
)

func TestResponderDefaults(t *testing.T) {
	d := NewResponder()
	require.Equal(t, DefaultViewNamer, d.namer)
	require.Equal(t, http.StatusNotFound, d.viewNotFoundCode)
	require.Equal(t, template.ErrTmpl, d.templates.err)
}

func TestResponderWithContactErrMsg(t *testing.T) {
	expected := "Please contact us at us@example.com."
	d := NewResponder(WithContactErrMsg(expected))
	require.Equal(t, expected, d.contactErrMsg)
}

func TestResponderWithErrTemplate(t *testing.T) {
	expected := "test.tmpl"
	d := NewResponder(WithErrTemplate(expected))
	require.Equal(t, expected, d.templates.err)
}

func TestResponderWithLogger(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := log.New(b, "", log.LstdFlags)
	ll := logger.New(logger.WithLogger(l))
	d := NewResponder(WithLogger(ll))

	msg := "unit testing is fun!"

	// Act
	d.logger.Info(msg, nil)

	// Assert
	actual := b.String()
	require.Contains(t, actual, "[INFO]")
	require.Contains(t, actual, "responder_opt_test.go")
	require.Contains(t, actual, msg)
}

func TestResponderWithParser(t *testing.T) {
	p := templatetest.NewParser()
	d := NewResponder(WithParser(p))
	require.Equal(t, p, d.parser)
}

func TestResponderWithRootUrl(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		u, _ := url.ParseRequestURI("https://example.com")
		expected := u.String()
		d := NewResponder(WithRootUrl("https://example.com"))
		require.Equal(t, expected, d.rootUrl.String())
	})

	t.Run("Null-Byte", func(t *testing.T) {
		expected := "https://example.com"
		d := NewResponder(WithRootUrl(string('\x00')))
		require.Equal(t, expected, d.rootUrl.String())
	})
}

func TestResponderWithViewNamer(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		d := NewResponder(WithViewNamer(nil))
		require.Equal(t, DefaultViewNamer, d.namer)
	})

	t.Run("Set", func(t *testing.T) {
		expected := PrefixSuffix{Prefix: "pages/", Suffix: ".html"}
		d := NewResponder(WithViewNamer(expected))
		require.Equal(t, expected, d.namer)
	})
}

func TestResponderWithViewNotFoundCode(t *testing.T) {
	tcs := []struct {
		name     string
		code     int
		expected int
	}{
		{"Server-Error", http.StatusInternalServerError, http.StatusInternalServerError},
		{"Gone", http.StatusGone, http.StatusGone},
		{"Success", http.StatusOK, http.StatusNotFound},
		{"Zero", 0, http.StatusNotFound},
		{"Too-High", 600, http.StatusNotFound},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d := NewResponder(WithViewNotFoundCode(tc.code))
			require.Equal(t, tc.expected, d.viewNotFoundCode)
		})
	}
}
