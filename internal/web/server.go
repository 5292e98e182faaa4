/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package web

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"blog/internal"
	"blog/internal/applog"
	"blog/internal/cache"
	"blog/internal/handler"
	"blog/internal/middleware"
	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

// Server manages the HTTP side of the application: it assembles the router
// out of the services, runs the listener and shuts it down gracefully.
type Server struct {
	running atomic.Bool

	logger applog.Logger
	server *http.Server

	stopFromOutsideChan chan struct{}
	doneFromInsideChan  chan struct{}

	authService         service.AuthService
	feedService         service.FeedService
	postService         service.PostService
	commentService      service.CommentService
	subscriptionService service.SubscriptionService
	pageCache           *cache.PageCache
}

func NewServer(
	authService service.AuthService,
	feedService service.FeedService,
	postService service.PostService,
	commentService service.CommentService,
	subscriptionService service.SubscriptionService,
	pageCache *cache.PageCache,
	logger applog.Logger,
) *Server {
	return &Server{
		stopFromOutsideChan: make(chan struct{}),
		doneFromInsideChan:  make(chan struct{}),
		authService:         authService,
		feedService:         feedService,
		postService:         postService,
		commentService:      commentService,
		subscriptionService: subscriptionService,
		pageCache:           pageCache,
		logger:              logger,
	}
}

func (s *Server) Logf(format string, a ...any) {
	s.logger.Logf(format, a...)
}

func (s *Server) IsRunning() bool {
	return s.running.Load()
}

// clearCacheAfter drops the cached pages once a post mutation went through,
// so the global feed never stays stale longer than one request
func (s *Server) clearCacheAfter(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r)
		if r.Method != http.MethodGet {
			s.pageCache.Clear()
		}
	}
}

// Router builds the full route table. The fixed routes come before the
// /{username} family, since mux matches in registration order.
func (s *Server) Router(cfg *internal.Config, cookieStore *sessions.CookieStore, renderer *view.PageRenderer) *mux.Router {
	feedHandler := handler.NewFeedHandler(s.feedService, renderer)
	postHandler := handler.NewPostHandler(s.postService, s.commentService, renderer, cfg.MediaDirectory)
	commentHandler := handler.NewCommentHandler(s.postService, s.commentService, renderer)
	followHandler := handler.NewFollowHandler(s.subscriptionService, renderer)
	authHandler := handler.NewAuthHandler(s.authService, cookieStore, renderer)

	r := mux.NewRouter()

	// Authentication routes
	r.HandleFunc("/signup", authHandler.Register).Methods("POST", "GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST", "GET")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET")

	// Feed routes; the global feed is served through the whole-page cache
	r.HandleFunc("/", s.pageCache.Middleware(middleware.WithUser(cookieStore, feedHandler.Index))).Methods("GET")
	r.HandleFunc("/new", middleware.RequireUser(cookieStore, s.clearCacheAfter(postHandler.NewPost))).Methods("POST", "GET")
	r.HandleFunc("/follow", middleware.RequireUser(cookieStore, feedHandler.FollowIndex)).Methods("GET")
	r.HandleFunc("/group/{slug}", middleware.WithUser(cookieStore, feedHandler.GroupPosts)).Methods("GET")

	// Uploaded images
	r.PathPrefix("/media/").Handler(http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaDirectory))))

	// Profile and post routes
	r.HandleFunc("/{username}/follow", middleware.RequireUser(cookieStore, followHandler.ProfileFollow)).Methods("GET")
	r.HandleFunc("/{username}/unfollow", middleware.RequireUser(cookieStore, followHandler.ProfileUnfollow)).Methods("GET")
	r.HandleFunc("/{username}/{post_id}/edit", middleware.RequireUser(cookieStore, s.clearCacheAfter(postHandler.EditPost))).Methods("POST", "GET")
	r.HandleFunc("/{username}/{post_id}/comment", middleware.RequireUser(cookieStore, commentHandler.AddComment)).Methods("POST")
	r.HandleFunc("/{username}/{post_id}", middleware.WithUser(cookieStore, postHandler.PostView)).Methods("GET")
	r.HandleFunc("/{username}", middleware.WithUser(cookieStore, feedHandler.Profile)).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(feedHandler.NotFound)

	return r
}

// Run starts the HTTP server and blocks until it stops, either because ctx
// was cancelled or because Stop was called.
func (s *Server) Run(ctx context.Context, cfg *internal.Config) error {
	s.Logf("Web server starting...")

	cookieStore := sessions.NewCookieStore([]byte(cfg.SecretKey))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(7 * 24 * time.Hour.Seconds()),
	}

	// Load templates and page renderer
	templates, err := internal.RetrieveWebTemplates(cfg.TemplateDirectory)
	if err != nil {
		return err
	}
	renderer := view.NewPageRenderer(templates)

	s.server = &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.HTTPServerPort),
		Handler:        s.Router(cfg, cookieStore, renderer),
		ReadTimeout:    time.Duration(cfg.ReadTimeout * int64(time.Second)),
		WriteTimeout:   time.Duration(cfg.WriteTimeout * int64(time.Second)),
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		select {
		case <-ctx.Done():
			s.Logf("Received stop signal. Shutting down...")
		case <-s.stopFromOutsideChan:
			s.Logf("Server was asked to stop. Shutting down...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.Logf("Error during shutdown... %v\n", err)
		}
		close(s.doneFromInsideChan)
	}()

	s.running.Store(true)
	s.Logf("Http server listening on port {%d}", cfg.HTTPServerPort)

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		s.Logf("FATAL: HTTP Server error{%v}\n", err)
		return err
	}

	return nil
}

func (s *Server) Stop() {
	close(s.stopFromOutsideChan)
	<-s.doneFromInsideChan
	s.running.Store(false)
}
