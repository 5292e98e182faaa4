/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"blog/internal"
	"blog/internal/entity"
	"blog/internal/repository"
	"blog/internal/service"
	"blog/internal/testdb"
	"blog/internal/view"

	"github.com/gorilla/sessions"
)

type MockLogger struct{}

func (m *MockLogger) Logf(format string, v ...any) {
	fmt.Printf(format+"\n", v...)
}

// fixture wires real services over an in-memory database to handlers backed
// by the real templates, so tests exercise the same path production takes
type fixture struct {
	auth     *AuthHandler
	feeds    *FeedHandler
	posts    *PostHandler
	comments *CommentHandler
	follows  *FollowHandler

	authService     service.AuthService
	postService     service.PostService
	feedService     service.FeedService
	commentService  service.CommentService
	subscriptionSvc service.SubscriptionService
	cookieStore     *sessions.CookieStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testdb.Open(t)
	logger := &MockLogger{}

	users := repository.NewSQLiteUserRepository(db)
	groups := repository.NewSQLiteGroupRepository(db)
	posts := repository.NewSQLitePostRepository(db)
	comments := repository.NewSQLiteCommentRepository(db)
	follows := repository.NewSQLiteFollowRepository(db)

	tmplMap, err := internal.RetrieveWebTemplates("../../templates")
	if err != nil {
		t.Fatalf("Could not load templates: %v", err)
	}
	renderer := view.NewPageRenderer(tmplMap)

	f := &fixture{
		authService:     service.NewAuthService(users, logger),
		postService:     service.NewPostService(posts, groups, logger),
		feedService:     service.NewFeedService(posts, groups, users, follows, logger),
		commentService:  service.NewCommentService(posts, comments, logger),
		subscriptionSvc: service.NewSubscriptionService(users, follows, logger),
		cookieStore:     sessions.NewCookieStore([]byte("test-secret")),
	}
	f.auth = NewAuthHandler(f.authService, f.cookieStore, renderer)
	f.feeds = NewFeedHandler(f.feedService, renderer)
	f.posts = NewPostHandler(f.postService, f.commentService, renderer, t.TempDir())
	f.comments = NewCommentHandler(f.postService, f.commentService, renderer)
	f.follows = NewFollowHandler(f.subscriptionSvc, renderer)
	return f
}

func (f *fixture) registerUser(t *testing.T, username string) *entity.User {
	t.Helper()

	user, err := f.authService.Register(username, "s3cret")
	if err != nil {
		t.Fatalf("Could not register %s: %v", username, err)
	}
	return user
}

// asUser puts the requester in the request context the way the session
// middleware would
func asUser(r *http.Request, user *entity.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "user", entity.User{
		UUID:     user.UUID,
		Username: user.Username,
	}))
}
