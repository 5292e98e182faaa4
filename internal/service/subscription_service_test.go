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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowIsIdempotent(t *testing.T) {
	f := newFixture(t)

	reader := f.seedUser(t, "reader")
	f.seedUser(t, "author")

	require.NoError(t, f.subscriptions.Follow(reader.UUID, "author"))
	require.NoError(t, f.subscriptions.Follow(reader.UUID, "author"))

	count, err := f.follows.CountByUser(reader.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSelfFollowNeverCreatesAnEdge(t *testing.T) {
	f := newFixture(t)

	alice := f.seedUser(t, "alice")

	require.NoError(t, f.subscriptions.Follow(alice.UUID, "alice"))

	count, err := f.follows.CountByUser(alice.UUID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUnfollowRemovesTheEdge(t *testing.T) {
	f := newFixture(t)

	reader := f.seedUser(t, "reader")
	author := f.seedUser(t, "author")

	require.NoError(t, f.subscriptions.Follow(reader.UUID, "author"))
	require.NoError(t, f.subscriptions.Unfollow(reader.UUID, "author"))

	exists, err := f.follows.Exists(reader.UUID, author.UUID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Unfollowing again is not an error
	require.NoError(t, f.subscriptions.Unfollow(reader.UUID, "author"))
}

func TestFollowUnknownTarget(t *testing.T) {
	f := newFixture(t)

	reader := f.seedUser(t, "reader")

	err := f.subscriptions.Follow(reader.UUID, "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	err = f.subscriptions.Unfollow(reader.UUID, "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
