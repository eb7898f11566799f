package demo_test

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/demo"
	"github.com/xy-planning-network/signpost/logger"
	"github.com/xy-planning-network/signpost/ranger"
)

func newTestRanger(t *testing.T, b *bytes.Buffer) *ranger.Ranger {
	t.Helper()

	cfg := ranger.Config{
		BaseURL: "http://localhost:3000",
		Env:     signpost.Testing.String(),
		Views:   ranger.ViewsConfig{Prefix: "views/", Suffix: ".tmpl", NotFoundCode: http.StatusNotFound},
	}
	l := logger.New(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(logger.LogLevelDebug))

	rng, err := ranger.New(
		ranger.WithConfig(cfg),
		ranger.WithLogger(l),
		ranger.WithViews(demo.Views),
		ranger.WithStatic(demo.Assets),
	)
	require.Nil(t, err)

	rt := demo.NewReturnTypes(l)
	rng.Subrouter(strings.TrimSuffix(demo.Base, "/")).HandleRoutes(rt.Routes(rng.Controller(demo.Base)))

	return rng
}

func TestReturnTypes(t *testing.T) {
	tcs := []struct {
		name     string
		method   string
		target   string
		code     int
		contains string
		header   http.Header
	}{
		{"Index", http.MethodGet, "/controller/", http.StatusOK, `<a href="/controller/void">void</a>`, nil},
		{
			"Index-Form",
			http.MethodGet,
			"/controller/",
			http.StatusOK,
			`<form method="POST" action="/controller/returnStringForForward">`,
			nil,
		},
		{"Void", http.MethodGet, "/controller/void", http.StatusOK, "<h1>controller/void</h1>", nil},
		{"String", http.MethodGet, "/controller/string", http.StatusOK, "<h1>Yoseph</h1>", nil},
		{
			"String-With-Command-Object",
			http.MethodGet,
			"/controller/stringWithCommandObject?name=Yoseph&age=23",
			http.StatusOK,
			"Yoseph is 23",
			nil,
		},
		{
			"String-With-Command-Object-Bad-Age",
			http.MethodGet,
			"/controller/stringWithCommandObject?name=Yoseph&age=notanumber",
			http.StatusBadRequest,
			"",
			nil,
		},
		{
			"String-With-Command-Object-Missing-Age",
			http.MethodGet,
			"/controller/stringWithCommandObject?name=Yoseph",
			http.StatusBadRequest,
			"missing required parameters: age",
			nil,
		},
		{
			"String-With-Command-Object-Empty-Name",
			http.MethodGet,
			"/controller/stringWithCommandObject?name=&age=23",
			http.StatusBadRequest,
			"",
			nil,
		},
		{
			"Return-String-For-Redirection",
			http.MethodGet,
			"/controller/returnStringForRedirection",
			http.StatusFound,
			"",
			http.Header{"Location": []string{"/controller/redirect"}},
		},
		{
			"Return-String-For-Forward",
			http.MethodPost,
			"/controller/returnStringForForward",
			http.StatusOK,
			"forwarded from /controller/returnStringForForward",
			nil,
		},
		{
			"Return-Response-Entity",
			http.MethodGet,
			"/controller/returnResponseEntity",
			http.StatusOK,
			"{ 'name': 'Yoseph', 'age': 23 }",
			http.Header{"Content-Type": []string{"application/json; charset=utf8"}},
		},
		{"Redirect", http.MethodGet, "/controller/redirect", http.StatusOK, "<h1>redirect</h1>", nil},
		{"Forward", http.MethodPost, "/controller/forward", http.StatusOK, "<h1>forward</h1>", nil},
		{"Asset", http.MethodGet, "/assets/signpost.css", http.StatusOK, "font-family", nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rng := newTestRanger(t, new(bytes.Buffer))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)

			// Act
			rng.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Contains(t, w.Body.String(), tc.contains)
			for k := range tc.header {
				require.Equal(t, tc.header.Get(k), w.Header().Get(k))
			}
		})
	}
}

func TestReturnTypesResponseEntityExact(t *testing.T) {
	// Arrange
	rng := newTestRanger(t, new(bytes.Buffer))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/controller/returnResponseEntity", nil)
	r.Header.Set("Accept", "application/xml")

	// Act
	rng.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "{ 'name': 'Yoseph', 'age': 23 }", w.Body.String())
	require.Equal(t, "application/json; charset=utf8", w.Header().Get("Content-Type"))
}

func TestReturnTypesCommandObjectEncoded(t *testing.T) {
	// Arrange
	rng := newTestRanger(t, new(bytes.Buffer))
	w := httptest.NewRecorder()

	q := url.Values{"name": {"Yoseph Kim"}, "age": {"41"}}
	r := httptest.NewRequest(http.MethodGet, "/controller/stringWithCommandObject?"+q.Encode(), nil)

	// Act
	rng.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Yoseph Kim is 41")
}

func TestReturnTypesJavaObject(t *testing.T) {
	want := demo.Person{Name: "Yoseph", Age: 23}

	t.Run("JSON", func(t *testing.T) {
		// Arrange
		rng := newTestRanger(t, new(bytes.Buffer))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/controller/returnJavaObject", nil)

		// Act
		rng.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json; charset=UTF-8", w.Header().Get("Content-Type"))
		require.JSONEq(t, `{"name":"Yoseph","age":23}`, w.Body.String())
	})

	t.Run("XML", func(t *testing.T) {
		// Arrange
		rng := newTestRanger(t, new(bytes.Buffer))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/controller/returnJavaObject", nil)
		r.Header.Set("Accept", "application/xml")

		// Act
		rng.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/xml; charset=UTF-8", w.Header().Get("Content-Type"))

		var got demo.Person
		require.Nil(t, xml.Unmarshal(w.Body.Bytes(), &got))
		require.Equal(t, want, got)
	})

	t.Run("Not-Acceptable", func(t *testing.T) {
		// Arrange
		rng := newTestRanger(t, new(bytes.Buffer))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/controller/returnJavaObject", nil)
		r.Header.Set("Accept", "image/png")

		// Act
		rng.ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusNotAcceptable, w.Code)
	})

	t.Run("Unwrapped", func(t *testing.T) {
		// Arrange
		rng := newTestRanger(t, new(bytes.Buffer))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/controller/returnJavaObject", nil)

		// Act
		rng.ServeHTTP(w, r)

		// Assert
		var got map[string]any
		require.Nil(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
	})
}

func TestReturnTypesLogsInvocations(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	rng := newTestRanger(t, b)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/controller/returnStringForForward", nil)

	// Act
	rng.ServeHTTP(w, r)

	// Assert
	require.Contains(t, b.String(), "ReturnStringForForward invoked")
	require.Contains(t, b.String(), "Forward invoked")
	require.Contains(t, b.String(), "resolved to forward")
}
