package utils

import (
	"encoding/base64"
	"net/http"
)

// Flash messages survive exactly one redirect: set on the response that
// redirects, read and cleared on the next page render. The message is
// base64-encoded because cookie values cannot carry spaces.

func SetFlash(w http.ResponseWriter, kind string, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "flash",
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   60,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "flash_kind",
		Value:    kind,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   60,
	})
}

// PopFlash reads the pending flash message, clears it, and returns its kind
// ("error" or "success") and text. Both are empty when no flash is set.
func PopFlash(w http.ResponseWriter, r *http.Request) (string, string) {
	c, err := r.Cookie("flash")
	if err != nil || c.Value == "" {
		return "", ""
	}

	decoded, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		decoded = nil
	}

	kind := ""
	if kc, err := r.Cookie("flash_kind"); err == nil {
		kind = kc.Value
	}

	http.SetCookie(w, &http.Cookie{Name: "flash", Value: "", Path: "/", MaxAge: -1})
	http.SetCookie(w, &http.Cookie{Name: "flash_kind", Value: "", Path: "/", MaxAge: -1})

	return kind, string(decoded)
}
