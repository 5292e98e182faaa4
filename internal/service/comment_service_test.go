/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommentLengthBounds(t *testing.T) {
	f := newFixture(t)

	alice := f.seedUser(t, "alice")
	post := f.seedPost(t, alice, nil, "a post", time.Now())

	cases := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", true},
		{"single character", "x", false},
		{"exactly at the limit", strings.Repeat("y", 100), false},
		{"one past the limit", strings.Repeat("z", 101), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := f.commentsSvc.AddComment(alice.UUID, post.UUID, c.text)
			if c.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("Expected ErrValidation, got %v", err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddCommentUnknownPost(t *testing.T) {
	f := newFixture(t)

	alice := f.seedUser(t, "alice")

	err := f.commentsSvc.AddComment(alice.UUID, "no-such-post", "hello")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListCommentsNewestFirst(t *testing.T) {
	f := newFixture(t)

	alice := f.seedUser(t, "alice")
	bob := f.seedUser(t, "bob")
	post := f.seedPost(t, alice, nil, "a post", time.Now())

	require.NoError(t, f.commentsSvc.AddComment(alice.UUID, post.UUID, "first"))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, f.commentsSvc.AddComment(bob.UUID, post.UUID, "second"))

	comments, err := f.commentsSvc.ListComments(post.UUID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "second", comments[0].Text)
	assert.Equal(t, "bob", comments[0].Author.Username)
	assert.Equal(t, "first", comments[1].Text)
}
