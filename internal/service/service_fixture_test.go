/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"fmt"
	"testing"
	"time"

	"blog/internal/entity"
	"blog/internal/repository"
	"blog/internal/testdb"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MockLogger struct{}

func (m *MockLogger) Logf(format string, v ...any) {
	fmt.Printf(format+"\n", v...)
}

// fixture bundles one database with every repository and service, so a test
// can mix writes through the services with direct seeding through the repos
type fixture struct {
	db            *gorm.DB
	users         repository.UserRepository
	groups        repository.GroupRepository
	posts         repository.PostRepository
	comments      repository.CommentRepository
	follows       repository.FollowRepository
	auth          AuthService
	feeds         FeedService
	postsService  PostService
	commentsSvc   CommentService
	subscriptions SubscriptionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testdb.Open(t)
	logger := &MockLogger{}

	f := &fixture{
		db:       db,
		users:    repository.NewSQLiteUserRepository(db),
		groups:   repository.NewSQLiteGroupRepository(db),
		posts:    repository.NewSQLitePostRepository(db),
		comments: repository.NewSQLiteCommentRepository(db),
		follows:  repository.NewSQLiteFollowRepository(db),
	}
	f.auth = NewAuthService(f.users, logger)
	f.feeds = NewFeedService(f.posts, f.groups, f.users, f.follows, logger)
	f.postsService = NewPostService(f.posts, f.groups, logger)
	f.commentsSvc = NewCommentService(f.posts, f.comments, logger)
	f.subscriptions = NewSubscriptionService(f.users, f.follows, logger)
	return f
}

func (f *fixture) seedUser(t *testing.T, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		UUID:      uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
		Secret:    entity.UserSecret{Hash: "not-a-real-hash"},
	}
	if err := f.users.Create(user); err != nil {
		t.Fatalf("Could not seed user %s: %v", username, err)
	}
	return user
}

func (f *fixture) seedGroup(t *testing.T, title, slug string) *entity.Group {
	t.Helper()

	group := &entity.Group{
		UUID:        uuid.New().String(),
		Title:       title,
		Description: "A group about " + title,
		Slug:        slug,
	}
	if err := f.groups.Create(group); err != nil {
		t.Fatalf("Could not seed group %s: %v", slug, err)
	}
	return group
}

// seedPost creates a post directly, with an explicit publication date so
// tests can control feed ordering. Pass a nil group for ungrouped posts.
func (f *fixture) seedPost(t *testing.T, author *entity.User, group *entity.Group, text string, pubDate time.Time) *entity.Post {
	t.Helper()

	post := &entity.Post{
		UUID:       uuid.New().String(),
		Text:       text,
		PubDate:    pubDate,
		AuthorUUID: author.UUID,
	}
	if group != nil {
		post.GroupUUID = &group.UUID
	}
	if err := f.posts.Create(post); err != nil {
		t.Fatalf("Could not seed post %q: %v", text, err)
	}
	return post
}
