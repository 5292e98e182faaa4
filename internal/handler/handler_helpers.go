/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"blog/internal/entity"
	"blog/internal/pagination"
	"blog/internal/view"

	"github.com/google/uuid"
)

// requester extracts the authenticated user the middleware put on the request
// context. ok is false for anonymous requests.
func requester(r *http.Request) (entity.User, bool) {
	user, ok := r.Context().Value("user").(entity.User)
	return user, ok
}

// pageNumber reads the requested page from the query string, defaulting to 1
func pageNumber(r *http.Request) int {
	return pagination.ParseNumber(r.URL.Query().Get("page"))
}

// notFound renders the 404 page, falling back to a plain error when even the
// template cannot be rendered
func notFound(w http.ResponseWriter, r *http.Request, renderer *view.PageRenderer) {
	w.WriteHeader(http.StatusNotFound)
	if err := renderer.RenderTemplate(w, "404.html", map[string]interface{}{"Path": r.URL.Path}); err != nil {
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}

// saveUpload stores the optional uploaded file of the given form field under
// mediaDir/posts/ and returns its path relative to mediaDir. An absent file is
// not an error: the returned path is just empty.
func saveUpload(r *http.Request, field, mediaDir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	if err := os.MkdirAll(filepath.Join(mediaDir, "posts"), 0755); err != nil {
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(header.Filename)
	relative := filepath.Join("posts", name)

	dst, err := os.Create(filepath.Join(mediaDir, relative))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return relative, nil
}
