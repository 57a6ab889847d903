package middleware

import (
	"net/http"
	"strings"
)

const overrideField = "_method"

// Memory threshold for parsing multipart bodies; larger files spill to disk.
const maxFormMemory = 32 << 20

// MethodOverride lets HTML forms reach PATCH and DELETE routes by tunneling
// the real verb through a "_method" query parameter or form field on POST
// requests. It wraps the router so the rewritten method takes part in routing.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if m := overrideMethod(r); m != "" {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request) string {
	m := r.URL.Query().Get(overrideField)
	if m == "" {
		contentType := r.Header.Get("Content-Type")
		switch {
		case strings.HasPrefix(contentType, "multipart/form-data"):
			if err := r.ParseMultipartForm(maxFormMemory); err == nil {
				m = r.PostFormValue(overrideField)
			}
		case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
			if err := r.ParseForm(); err == nil {
				m = r.PostFormValue(overrideField)
			}
		}
	}

	switch strings.ToUpper(m) {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return strings.ToUpper(m)
	}
	return ""
}
