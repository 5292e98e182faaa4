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
	"fmt"
	"time"

	"blog/internal/applog"
	"blog/internal/entity"
	"blog/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service appending comments under posts
type CommentService interface {
	AddComment(userUUID, postUUID, text string) error          // Persists a new comment by the given user under the given post
	ListComments(postUUID string) ([]*entity.Comment, error)   // Retrieves the comments of a post, newest first
}

type commentService struct {
	postRepository    repository.PostRepository    // Repository for posts
	commentRepository repository.CommentRepository // Repository for comments
	logger            applog.Logger                // Logs a format string
}

func NewCommentService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, logger applog.Logger) CommentService {
	return &commentService{
		postRepository:    postRepo,
		commentRepository: commentRepo,
		logger:            logger,
	}
}

func (c *commentService) Logf(format string, v ...any) {
	c.logger.Logf(format, v...)
}

func (c *commentService) AddComment(userUUID, postUUID, text string) error {
	if text == "" {
		return fmt.Errorf("%w: comment text must not be empty", ErrValidation)
	}
	if len([]rune(text)) > entity.CommentMaxLength {
		return fmt.Errorf("%w: comment text must not exceed %d characters", ErrValidation, entity.CommentMaxLength)
	}

	post, err := c.postRepository.GetByUUID(postUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no post with uuid %q", ErrNotFound, postUUID)
		}
		return err
	}

	comment := &entity.Comment{
		UUID:       uuid.New().String(),
		Text:       text,
		Created:    time.Now(),
		PostUUID:   post.UUID,
		AuthorUUID: userUUID,
	}
	if err := c.commentRepository.Create(comment); err != nil {
		return err
	}

	c.Logf("Comment added under post %s", postUUID)
	return nil
}

func (c *commentService) ListComments(postUUID string) ([]*entity.Comment, error) {
	return c.commentRepository.ListByPost(postUUID)
}
