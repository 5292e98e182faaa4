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

// CommentHandler appends comments under posts
type CommentHandler struct {
	postService    service.PostService
	commentService service.CommentService
	renderer       *view.PageRenderer
}

func NewCommentHandler(postService service.PostService, commentService service.CommentService, renderer *view.PageRenderer) *CommentHandler {
	return &CommentHandler{postService, commentService, renderer}
}

// Adds a comment to a post, then returns to the post page. A validation
// failure re-renders the post page with the message next to the form.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	postUUID := vars["post_id"]

	user, ok := requester(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	text := r.FormValue("text")
	if err := h.commentService.AddComment(user.UUID, postUUID, text); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			notFound(w, r, h.renderer)
		case errors.Is(err, service.ErrValidation):
			h.renderPostPage(w, r, username, postUUID, err.Error())
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/"+url.PathEscape(username)+"/"+url.PathEscape(postUUID), http.StatusSeeOther)
}

func (h *CommentHandler) renderPostPage(w http.ResponseWriter, r *http.Request, username, postUUID, errorMessage string) {
	post, err := h.postService.GetPost(postUUID)
	if err != nil || post.Author.Username != username {
		notFound(w, r, h.renderer)
		return
	}

	comments, err := h.commentService.ListComments(postUUID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	user, _ := requester(r)
	data := map[string]interface{}{
		"LoggedUser": user.Username,
		"Post":       post,
		"Author":     post.Author,
		"Comments":   comments,
		"Error":      errorMessage,
	}

	if err := h.renderer.RenderTemplate(w, "post.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
