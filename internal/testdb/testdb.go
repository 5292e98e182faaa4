/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package testdb opens isolated in-memory databases for tests. Each call gets
// its own SQLite database, migrated to the full schema, so tests never see
// each other's rows.
package testdb

import (
	"testing"

	"blog/internal/entity"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated in-memory database unique to the calling test
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	// A unique name per test keeps in-memory databases apart even when
	// connections are pooled
	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("testdb: could not open database: %v", err)
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
		t.Fatalf("testdb: could not migrate schema: %v", err)
	}

	return db
}
