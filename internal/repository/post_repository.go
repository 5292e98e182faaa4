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

// This repository is used to manipulate the posts in the system. Every List
// method returns a reverse-chronological window (pub_date DESC) with the
// post's author and group preloaded; the matching Count methods give the
// totals the paginator needs.
type PostRepository interface {
	Create(post *entity.Post) error // Inserts a post
	Update(post *entity.Post) error // Overwrites an existing post in place

	GetByUUID(uuid string) (*entity.Post, error) // Retrieves the post with the given uuid

	ListAll(offset, limit int) ([]*entity.Post, error)                        // Retrieves a window over all the posts
	ListByGroup(groupUUID string, offset, limit int) ([]*entity.Post, error)  // Retrieves a window over the posts of one group
	ListByAuthor(authorUUID string, offset, limit int) ([]*entity.Post, error) // Retrieves a window over the posts of one author
	ListFollowed(userUUID string, offset, limit int) ([]*entity.Post, error)  // Retrieves a window over the posts of the authors followed by the given user

	CountAll() (int64, error)                       // Counts all the posts
	CountByGroup(groupUUID string) (int64, error)   // Counts the posts of one group
	CountByAuthor(authorUUID string) (int64, error) // Counts the posts of one author
	CountFollowed(userUUID string) (int64, error)   // Counts the posts of the authors followed by the given user
}

// Implementation of the repository using a SQLite DB
type SQLitePostRepository struct {
	db *gorm.DB
}

func NewSQLitePostRepository(db *gorm.DB) PostRepository {
	return &SQLitePostRepository{db}
}

func (repo *SQLitePostRepository) Create(post *entity.Post) error {
	return repo.db.Create(post).Error
}

func (repo *SQLitePostRepository) Update(post *entity.Post) error {
	return repo.db.Save(post).Error
}

func (repo *SQLitePostRepository) GetByUUID(uuid string) (*entity.Post, error) {
	var post entity.Post
	err := repo.db.Preload("Author").Preload("Group").Where("UUID = ?", uuid).First(&post).Error
	return &post, err
}

func (repo *SQLitePostRepository) ListAll(offset, limit int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.feed(repo.db).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) ListByGroup(groupUUID string, offset, limit int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.feed(repo.db.Where("group_uuid = ?", groupUUID)).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) ListByAuthor(authorUUID string, offset, limit int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.feed(repo.db.Where("author_uuid = ?", authorUUID)).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) ListFollowed(userUUID string, offset, limit int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.feed(repo.followed(userUUID)).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) CountAll() (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Count(&count).Error
	return count, err
}

func (repo *SQLitePostRepository) CountByGroup(groupUUID string) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Where("group_uuid = ?", groupUUID).Count(&count).Error
	return count, err
}

func (repo *SQLitePostRepository) CountByAuthor(authorUUID string) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Where("author_uuid = ?", authorUUID).Count(&count).Error
	return count, err
}

func (repo *SQLitePostRepository) CountFollowed(userUUID string) (int64, error) {
	var count int64
	err := repo.followed(userUUID).Model(&entity.Post{}).Count(&count).Error
	return count, err
}

// feed applies the ordering and preloads every post listing shares
func (repo *SQLitePostRepository) feed(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Author").Preload("Group").Order("pub_date DESC")
}

// followed restricts posts to authors the given user has a follow edge towards
func (repo *SQLitePostRepository) followed(userUUID string) *gorm.DB {
	return repo.db.
		Joins("JOIN follows ON follows.author_uuid = posts.author_uuid").
		Where("follows.user_uuid = ?", userUUID)
}
