/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"context"

	"blog/internal"
	"blog/internal/applog"
	"blog/internal/cache"
	"blog/internal/entity"
	"blog/internal/repository"
	"blog/internal/service"
	"blog/internal/web"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfg, err := internal.LoadConfig(".")
	if err != nil {
		fmt.Printf("Could not load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBName), &gorm.Config{})
	if err != nil {
		fmt.Printf("Could not open the database: %v\n", err)
		os.Exit(1)
	}
	db.Exec("PRAGMA foreign_keys = ON")

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.UserSecret{},
		&entity.Group{},
		&entity.Post{},
		&entity.Comment{},
		&entity.Follow{},
	); err != nil {
		fmt.Printf("Could not migrate the schema: %v\n", err)
		os.Exit(1)
	}

	appLogger := applog.NewAppLogger(os.Stdout, cfg.EnableLogging)

	userRepo := repository.NewSQLiteUserRepository(db)
	groupRepo := repository.NewSQLiteGroupRepository(db)
	postRepo := repository.NewSQLitePostRepository(db)
	commentRepo := repository.NewSQLiteCommentRepository(db)
	followRepo := repository.NewSQLiteFollowRepository(db)

	authService := service.NewAuthService(userRepo, appLogger.Subsystem("auth"))
	feedService := service.NewFeedService(postRepo, groupRepo, userRepo, followRepo, appLogger.Subsystem("feed"))
	postService := service.NewPostService(postRepo, groupRepo, appLogger.Subsystem("post"))
	commentService := service.NewCommentService(postRepo, commentRepo, appLogger.Subsystem("comment"))
	subscriptionService := service.NewSubscriptionService(userRepo, followRepo, appLogger.Subsystem("subscription"))

	pageCache := cache.NewPageCache(time.Duration(cfg.CacheTTLSeconds) * time.Second)

	server := web.NewServer(
		authService,
		feedService,
		postService,
		commentService,
		subscriptionService,
		pageCache,
		appLogger.Subsystem("web"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		fmt.Printf("Server stopped with error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Shutting off...\n")
}
