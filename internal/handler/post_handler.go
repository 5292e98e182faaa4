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

// PostHandler is used to handle routes regarding single posts:
// creation, the post page and editing.
type PostHandler struct {
	postService    service.PostService
	commentService service.CommentService
	renderer       *view.PageRenderer
	mediaDir       string
}

func NewPostHandler(postService service.PostService, commentService service.CommentService, renderer *view.PageRenderer, mediaDir string) *PostHandler {
	return &PostHandler{postService, commentService, renderer, mediaDir}
}

// Creates a post
// If the method is GET, the post form is shown
// If it's POST, the form fields are validated and the post is published
func (h *PostHandler) NewPost(w http.ResponseWriter, r *http.Request) {
	user, ok := requester(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		h.renderPostForm(w, user.Username, nil, "")
		return
	}

	image, err := saveUpload(r, "image", h.mediaDir)
	if err != nil {
		http.Error(w, "Error occurred while saving the image", http.StatusBadRequest)
		return
	}

	input := service.PostInput{
		Text:      r.FormValue("text"),
		GroupUUID: r.FormValue("group"),
		Image:     image,
	}

	if _, err := h.postService.CreatePost(user.UUID, input); err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.renderPostForm(w, user.Username, nil, err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Shows a single post with its comments and the comment form
func (h *PostHandler) PostView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	postUUID := vars["post_id"]

	post, err := h.postService.GetPost(postUUID)
	if err != nil || post.Author.Username != username {
		notFound(w, r, h.renderer)
		return
	}

	comments, err := h.commentService.ListComments(post.UUID)
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
	}

	if err := h.renderer.RenderTemplate(w, "post.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Edits a post. Only the author may edit: anyone else is sent back to the
// read-only post page instead of getting an error.
func (h *PostHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	postUUID := vars["post_id"]

	user, ok := requester(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	postURL := "/" + url.PathEscape(username) + "/" + url.PathEscape(postUUID)

	post, err := h.postService.GetPost(postUUID)
	if err != nil || post.Author.Username != username {
		notFound(w, r, h.renderer)
		return
	}

	if post.AuthorUUID != user.UUID {
		http.Redirect(w, r, postURL, http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		h.renderPostForm(w, user.Username, post, "")
		return
	}

	image, err := saveUpload(r, "image", h.mediaDir)
	if err != nil {
		http.Error(w, "Error occurred while saving the image", http.StatusBadRequest)
		return
	}

	input := service.PostInput{
		Text:      r.FormValue("text"),
		GroupUUID: r.FormValue("group"),
		Image:     image,
	}

	if err := h.postService.EditPost(user.UUID, postUUID, input); err != nil {
		switch {
		case errors.Is(err, service.ErrNotOwner):
			http.Redirect(w, r, postURL, http.StatusSeeOther)
		case errors.Is(err, service.ErrValidation):
			h.renderPostForm(w, user.Username, post, err.Error())
		case errors.Is(err, service.ErrNotFound):
			notFound(w, r, h.renderer)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, postURL, http.StatusSeeOther)
}

// renderPostForm shows the shared create/edit form. post is nil when creating.
func (h *PostHandler) renderPostForm(w http.ResponseWriter, loggedUser string, post interface{}, errorMessage string) {
	groups, err := h.postService.ListGroups()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"LoggedUser": loggedUser,
		"Post":       post,
		"Groups":     groups,
		"Error":      errorMessage,
	}

	if err := h.renderer.RenderTemplate(w, "post_new.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
