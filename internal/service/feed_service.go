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

	"blog/internal/applog"
	"blog/internal/entity"
	"blog/internal/pagination"
	"blog/internal/repository"

	"gorm.io/gorm"
)

// One page of a feed: the posts of the requested window plus the window itself
type Feed struct {
	Posts []*entity.Post
	Page  pagination.Page
}

// Everything the profile page shows besides the feed itself
type Profile struct {
	Author    *entity.User // The profile's owner
	PostCount int64        // Total number of posts the author has published
	Following bool         // Whether the viewer currently follows the author. Always false for anonymous viewers
}

// Service assembling the reverse-chronological, paginated post feeds.
// Page numbers are clamped, never rejected (see the pagination package).
type FeedService interface {
	GlobalFeed(pageNumber int) (*Feed, error)                                          // All the posts in the system
	GroupFeed(slug string, pageNumber int) (*entity.Group, *Feed, error)               // The posts of one group, looked up by slug
	ProfileFeed(viewerUUID, username string, pageNumber int) (*Profile, *Feed, error)  // The posts of one author, looked up by username, with profile extras
	FollowFeed(userUUID string, pageNumber int) (*Feed, error)                         // The posts of the authors followed by the given user
}

type feedService struct {
	postRepository   repository.PostRepository   // Repository for posts
	groupRepository  repository.GroupRepository  // Repository for groups
	userRepository   repository.UserRepository   // Repository for users
	followRepository repository.FollowRepository // Repository for follow edges
	logger           applog.Logger               // Logs a format string
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	logger applog.Logger,
) FeedService {
	return &feedService{
		postRepository:   postRepo,
		groupRepository:  groupRepo,
		userRepository:   userRepo,
		followRepository: followRepo,
		logger:           logger,
	}
}

func (f *feedService) Logf(format string, v ...any) {
	f.logger.Logf(format, v...)
}

func (f *feedService) GlobalFeed(pageNumber int) (*Feed, error) {
	count, err := f.postRepository.CountAll()
	if err != nil {
		return nil, err
	}

	page := pagination.Get(pageNumber, count)
	posts, err := f.postRepository.ListAll(page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}
	return &Feed{Posts: posts, Page: page}, nil
}

func (f *feedService) GroupFeed(slug string, pageNumber int) (*entity.Group, *Feed, error) {
	group, err := f.groupRepository.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: no group with slug %q", ErrNotFound, slug)
		}
		return nil, nil, err
	}

	count, err := f.postRepository.CountByGroup(group.UUID)
	if err != nil {
		return nil, nil, err
	}

	page := pagination.Get(pageNumber, count)
	posts, err := f.postRepository.ListByGroup(group.UUID, page.Offset, page.Limit)
	if err != nil {
		return nil, nil, err
	}
	return group, &Feed{Posts: posts, Page: page}, nil
}

func (f *feedService) ProfileFeed(viewerUUID, username string, pageNumber int) (*Profile, *Feed, error) {
	author, err := f.userRepository.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: no user with username %q", ErrNotFound, username)
		}
		return nil, nil, err
	}

	count, err := f.postRepository.CountByAuthor(author.UUID)
	if err != nil {
		return nil, nil, err
	}

	page := pagination.Get(pageNumber, count)
	posts, err := f.postRepository.ListByAuthor(author.UUID, page.Offset, page.Limit)
	if err != nil {
		return nil, nil, err
	}

	following := false
	if viewerUUID != "" {
		if following, err = f.followRepository.Exists(viewerUUID, author.UUID); err != nil {
			return nil, nil, err
		}
	}

	profile := &Profile{
		Author:    author,
		PostCount: count,
		Following: following,
	}
	return profile, &Feed{Posts: posts, Page: page}, nil
}

func (f *feedService) FollowFeed(userUUID string, pageNumber int) (*Feed, error) {
	count, err := f.postRepository.CountFollowed(userUUID)
	if err != nil {
		return nil, err
	}

	page := pagination.Get(pageNumber, count)
	posts, err := f.postRepository.ListFollowed(userUUID, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	f.Logf("Assembled follow feed for %s: %d posts total", userUUID, count)
	return &Feed{Posts: posts, Page: page}, nil
}
