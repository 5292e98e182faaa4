/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"errors"
	"net/http"
	"net/url"

	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/mux"
)

// FollowHandler creates and removes follow edges from the profile page
type FollowHandler struct {
	subscriptionService service.SubscriptionService
	renderer            *view.PageRenderer
}

func NewFollowHandler(subscriptionService service.SubscriptionService, renderer *view.PageRenderer) *FollowHandler {
	return &FollowHandler{subscriptionService, renderer}
}

// Subscribes the requester to the profile's author
func (h *FollowHandler) ProfileFollow(w http.ResponseWriter, r *http.Request) {
	h.subscribe(w, r, h.subscriptionService.Follow)
}

// Unsubscribes the requester from the profile's author
func (h *FollowHandler) ProfileUnfollow(w http.ResponseWriter, r *http.Request) {
	h.subscribe(w, r, h.subscriptionService.Unfollow)
}

func (h *FollowHandler) subscribe(w http.ResponseWriter, r *http.Request, op func(userUUID, targetUsername string) error) {
	username := mux.Vars(r)["username"]

	user, ok := requester(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := op(user.UUID, username); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(w, r, h.renderer)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/"+url.PathEscape(username), http.StatusSeeOther)
}
