/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"errors"
	"time"

	"blog/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// This repository is used to manipulate the follow edges between users.
// GetOrCreate and Delete are both idempotent, so a resubmitted follow or
// unfollow never fails and never duplicates an edge.
type FollowRepository interface {
	GetOrCreate(userUUID, authorUUID string) error // Creates the (user, author) edge unless it already exists
	Delete(userUUID, authorUUID string) error      // Deletes the (user, author) edge if present

	Exists(userUUID, authorUUID string) (bool, error) // Reports whether user currently follows author
	CountByUser(userUUID string) (int64, error)       // Counts how many authors the user follows
	CountByAuthor(authorUUID string) (int64, error)   // Counts how many followers the author has
}

// Implementation of the repository using a SQLite DB
type SQLiteFollowRepository struct {
	db *gorm.DB
}

func NewSQLiteFollowRepository(db *gorm.DB) FollowRepository {
	return &SQLiteFollowRepository{db}
}

func (repo *SQLiteFollowRepository) GetOrCreate(userUUID, authorUUID string) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		var edge entity.Follow
		err := tx.Where("user_uuid = ? AND author_uuid = ?", userUUID, authorUUID).First(&edge).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		edge = entity.Follow{
			UUID:       uuid.New().String(),
			CreatedAt:  time.Now(),
			UserUUID:   userUUID,
			AuthorUUID: authorUUID,
		}
		return tx.Create(&edge).Error
	})
}

func (repo *SQLiteFollowRepository) Delete(userUUID, authorUUID string) error {
	return repo.db.Where("user_uuid = ? AND author_uuid = ?", userUUID, authorUUID).Delete(&entity.Follow{}).Error
}

func (repo *SQLiteFollowRepository) Exists(userUUID, authorUUID string) (bool, error) {
	var count int64
	err := repo.db.Model(&entity.Follow{}).Where("user_uuid = ? AND author_uuid = ?", userUUID, authorUUID).Count(&count).Error
	return count > 0, err
}

func (repo *SQLiteFollowRepository) CountByUser(userUUID string) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Follow{}).Where("user_uuid = ?", userUUID).Count(&count).Error
	return count, err
}

func (repo *SQLiteFollowRepository) CountByAuthor(authorUUID string) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Follow{}).Where("author_uuid = ?", authorUUID).Count(&count).Error
	return count, err
}
