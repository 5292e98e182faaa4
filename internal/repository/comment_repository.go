/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"blog/internal/entity"

	"gorm.io/gorm"
)

// This repository is used to manipulate the comments under the posts.
type CommentRepository interface {
	Create(comment *entity.Comment) error // Inserts a comment

	ListByPost(postUUID string) ([]*entity.Comment, error) // Retrieves the comments of a post, newest first, with their authors
}

// Implementation of the repository using a SQLite DB
type SQLiteCommentRepository struct {
	db *gorm.DB
}

func NewSQLiteCommentRepository(db *gorm.DB) CommentRepository {
	return &SQLiteCommentRepository{db}
}

func (repo *SQLiteCommentRepository) Create(comment *entity.Comment) error {
	return repo.db.Create(comment).Error
}

func (repo *SQLiteCommentRepository) ListByPost(postUUID string) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	err := repo.db.Preload("Author").Where("post_uuid = ?", postUUID).Order("created DESC").Find(&comments).Error
	return comments, err
}
