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

	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/mux"
)

// FeedHandler serves the four read-only post listings: the global feed, a
// group's feed, an author's profile feed and the follow feed.
type FeedHandler struct {
	feedService service.FeedService
	renderer    *view.PageRenderer
}

func NewFeedHandler(feedService service.FeedService, renderer *view.PageRenderer) *FeedHandler {
	return &FeedHandler{feedService, renderer}
}

// Shows the global feed, all posts newest first
func (h *FeedHandler) Index(w http.ResponseWriter, r *http.Request) {
	feed, err := h.feedService.GlobalFeed(pageNumber(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	user, _ := requester(r)
	data := map[string]interface{}{
		"LoggedUser": user.Username,
		"Feed":       feed,
	}

	if err := h.renderer.RenderTemplate(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Shows the feed of one group, looked up by slug
func (h *FeedHandler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	group, feed, err := h.feedService.GroupFeed(slug, pageNumber(r))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(w, r, h.renderer)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	user, _ := requester(r)
	data := map[string]interface{}{
		"LoggedUser": user.Username,
		"Group":      group,
		"Feed":       feed,
	}

	if err := h.renderer.RenderTemplate(w, "group.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Shows an author's profile page: their posts, post count and whether the
// viewer follows them
func (h *FeedHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	user, _ := requester(r)

	profile, feed, err := h.feedService.ProfileFeed(user.UUID, username, pageNumber(r))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(w, r, h.renderer)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"LoggedUser": user.Username,
		"Profile":    profile,
		"Feed":       feed,
	}

	if err := h.renderer.RenderTemplate(w, "profile.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Shows the posts of the authors the requester follows
func (h *FeedHandler) FollowIndex(w http.ResponseWriter, r *http.Request) {
	user, ok := requester(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	feed, err := h.feedService.FollowFeed(user.UUID, pageNumber(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"LoggedUser": user.Username,
		"Feed":       feed,
	}

	if err := h.renderer.RenderTemplate(w, "follow.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Fallback for unmatched routes
func (h *FeedHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	notFound(w, r, h.renderer)
}
