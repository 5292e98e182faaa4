/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import "errors"

// Sentinel errors shared by every service. Callers match them with errors.Is
// and decide the HTTP shape: a missing record becomes a 404 page, a validation
// failure goes back to the form, a non-owner edit becomes a redirect to the
// read-only post view.
var (
	ErrNotFound         = errors.New("record not found")
	ErrValidation       = errors.New("invalid input")
	ErrNotOwner         = errors.New("requester does not own the post")
	ErrWrongCredentials = errors.New("wrong credentials")
)
