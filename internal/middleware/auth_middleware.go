/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package middleware

import (
	"context"
	"net/http"

	"blog/internal/entity"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie session every handler reads the requester from.
const SessionName = "auth-session"

// RequireUser only lets authenticated requesters through: anonymous ones are
// redirected to the login page. The resolved user ends up in the request
// context under "user".
func RequireUser(store *sessions.CookieStore, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := sessionUser(store, r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), "user", user)))
	}
}

// WithUser resolves the requester when a session exists but lets anonymous
// requesters through untouched. Pages readable by anyone use this so they can
// still personalize for logged-in viewers.
func WithUser(store *sessions.CookieStore, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if user, ok := sessionUser(store, r); ok {
			r = r.WithContext(context.WithValue(r.Context(), "user", user))
		}
		next(w, r)
	}
}

func sessionUser(store *sessions.CookieStore, r *http.Request) (entity.User, bool) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return entity.User{}, false
	}

	userUUID, ok1 := session.Values["user_uuid"].(string)
	username, ok2 := session.Values["username"].(string)
	if !(ok1 && ok2) {
		return entity.User{}, false
	}

	return entity.User{
		UUID:     userUUID,
		Username: username,
	}, true
}
