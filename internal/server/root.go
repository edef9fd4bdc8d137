package server

import (
	"io"
	"net/http"
)

const greeting = "Hello World!"

// RootHandler answers every request it receives with 200 and the greeting.
// Headers, query string and body are ignored; the content type is left to
// net/http.
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, greeting)
	}
}
