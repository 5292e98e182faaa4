/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"testing"
	"time"

	"blog/internal/entity"
	"blog/internal/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, repo UserRepository, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		UUID:      uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
		Secret:    entity.UserSecret{Hash: "not-a-real-hash"},
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Could not seed user %s: %v", username, err)
	}
	return user
}

func TestDeletingAUserRemovesItsPosts(t *testing.T) {
	db := testdb.Open(t)
	users := NewSQLiteUserRepository(db)
	posts := NewSQLitePostRepository(db)

	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	require.NoError(t, posts.Create(&entity.Post{
		UUID: uuid.New().String(), Text: "by alice", PubDate: time.Now(), AuthorUUID: alice.UUID,
	}))
	require.NoError(t, posts.Create(&entity.Post{
		UUID: uuid.New().String(), Text: "by bob", PubDate: time.Now(), AuthorUUID: bob.UUID,
	}))

	require.NoError(t, users.Delete(alice.UUID))

	count, err := posts.CountAll()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	remaining, err := posts.ListAll(0, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "by bob", remaining[0].Text)
}

func TestDeletingAGroupKeepsItsPosts(t *testing.T) {
	db := testdb.Open(t)
	users := NewSQLiteUserRepository(db)
	groups := NewSQLiteGroupRepository(db)
	posts := NewSQLitePostRepository(db)

	alice := seedUser(t, users, "alice")
	group := &entity.Group{UUID: uuid.New().String(), Title: "Cats", Slug: "cats"}
	require.NoError(t, groups.Create(group))

	post := &entity.Post{
		UUID: uuid.New().String(), Text: "a cat post", PubDate: time.Now(),
		AuthorUUID: alice.UUID, GroupUUID: &group.UUID,
	}
	require.NoError(t, posts.Create(post))

	require.NoError(t, db.Delete(&entity.Group{}, "uuid = ?", group.UUID).Error)

	kept, err := posts.GetByUUID(post.UUID)
	require.NoError(t, err)
	assert.Equal(t, "a cat post", kept.Text)
	assert.Nil(t, kept.GroupUUID)
}

func TestFollowedFeedJoinsOnTheEdge(t *testing.T) {
	db := testdb.Open(t)
	users := NewSQLiteUserRepository(db)
	posts := NewSQLitePostRepository(db)
	follows := NewSQLiteFollowRepository(db)

	reader := seedUser(t, users, "reader")
	followed := seedUser(t, users, "followed")
	ignored := seedUser(t, users, "ignored")

	require.NoError(t, posts.Create(&entity.Post{
		UUID: uuid.New().String(), Text: "wanted", PubDate: time.Now(), AuthorUUID: followed.UUID,
	}))
	require.NoError(t, posts.Create(&entity.Post{
		UUID: uuid.New().String(), Text: "unwanted", PubDate: time.Now(), AuthorUUID: ignored.UUID,
	}))
	require.NoError(t, follows.GetOrCreate(reader.UUID, followed.UUID))

	count, err := posts.CountFollowed(reader.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	feed, err := posts.ListFollowed(reader.UUID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "wanted", feed[0].Text)
	assert.Equal(t, "followed", feed[0].Author.Username)
}

func TestGetByUUIDUnknownPost(t *testing.T) {
	db := testdb.Open(t)
	posts := NewSQLitePostRepository(db)

	_, err := posts.GetByUUID("no-such-post")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
