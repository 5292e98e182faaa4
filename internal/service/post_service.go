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

// Fields a user submits when creating or editing a post. GroupUUID and Image
// are optional; empty means "no group" and "keep/no image" respectively.
type PostInput struct {
	Text      string
	GroupUUID string
	Image     string
}

// Service creating and editing posts. A post is mutable only by its author:
// anyone else attempting an edit gets ErrNotOwner, which the HTTP layer turns
// into a redirect to the read-only post view instead of an error page.
type PostService interface {
	CreatePost(authorUUID string, input PostInput) (string, error)          // Persists a new post, stamping author and publication date, and returns its uuid
	EditPost(requesterUUID, postUUID string, input PostInput) error         // Overwrites an existing post in place, preserving identity and publication date
	GetPost(postUUID string) (*entity.Post, error)                          // Retrieves a single post with its author and group
	ListGroups() ([]*entity.Group, error)                                   // Retrieves all the groups, for the post form's group selector
}

type postService struct {
	postRepository  repository.PostRepository  // Repository for posts
	groupRepository repository.GroupRepository // Repository for groups
	logger          applog.Logger              // Logs a format string
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, logger applog.Logger) PostService {
	return &postService{
		postRepository:  postRepo,
		groupRepository: groupRepo,
		logger:          logger,
	}
}

func (p *postService) Logf(format string, v ...any) {
	p.logger.Logf(format, v...)
}

func (p *postService) CreatePost(authorUUID string, input PostInput) (string, error) {
	groupUUID, err := p.validate(input)
	if err != nil {
		return "", err
	}

	post := &entity.Post{
		UUID:       uuid.New().String(),
		Text:       input.Text,
		PubDate:    time.Now(),
		Image:      input.Image,
		AuthorUUID: authorUUID,
		GroupUUID:  groupUUID,
	}
	if err := p.postRepository.Create(post); err != nil {
		return "", err
	}

	p.Logf("Post %s published by %s", post.UUID, authorUUID)
	return post.UUID, nil
}

func (p *postService) EditPost(requesterUUID, postUUID string, input PostInput) error {
	post, err := p.postRepository.GetByUUID(postUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no post with uuid %q", ErrNotFound, postUUID)
		}
		return err
	}

	if post.AuthorUUID != requesterUUID {
		return ErrNotOwner
	}

	groupUUID, err := p.validate(input)
	if err != nil {
		return err
	}

	// PubDate and UUID stay as they were
	post.Text = input.Text
	post.GroupUUID = groupUUID
	if input.Image != "" {
		post.Image = input.Image
	}
	if err := p.postRepository.Update(post); err != nil {
		return err
	}

	p.Logf("Post %s edited", postUUID)
	return nil
}

func (p *postService) GetPost(postUUID string) (*entity.Post, error) {
	post, err := p.postRepository.GetByUUID(postUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no post with uuid %q", ErrNotFound, postUUID)
		}
		return nil, err
	}
	return post, nil
}

func (p *postService) ListGroups() ([]*entity.Group, error) {
	return p.groupRepository.GetAll()
}

// validate checks the submitted fields and resolves the optional group,
// returning the group reference to store (nil for an ungrouped post)
func (p *postService) validate(input PostInput) (*string, error) {
	if input.Text == "" {
		return nil, fmt.Errorf("%w: post text must not be empty", ErrValidation)
	}

	if input.GroupUUID == "" {
		return nil, nil
	}
	group, err := p.groupRepository.GetByUUID(input.GroupUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no group with uuid %q", ErrValidation, input.GroupUUID)
		}
		return nil, err
	}
	return &group.UUID, nil
}
