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
	"blog/internal/repository"

	"gorm.io/gorm"
)

// Service managing the follow edges between users. Both operations are
// idempotent and silently skip self-follow, so a repeated or misdirected
// request never fails and never duplicates an edge.
type SubscriptionService interface {
	Follow(userUUID, targetUsername string) error   // Creates the follow edge towards the target, unless it exists or the target is the requester
	Unfollow(userUUID, targetUsername string) error // Removes the follow edge towards the target, if present
}

type subscriptionService struct {
	userRepository   repository.UserRepository   // Repository for users
	followRepository repository.FollowRepository // Repository for follow edges
	logger           applog.Logger               // Logs a format string
}

func NewSubscriptionService(userRepo repository.UserRepository, followRepo repository.FollowRepository, logger applog.Logger) SubscriptionService {
	return &subscriptionService{
		userRepository:   userRepo,
		followRepository: followRepo,
		logger:           logger,
	}
}

func (s *subscriptionService) Logf(format string, v ...any) {
	s.logger.Logf(format, v...)
}

func (s *subscriptionService) Follow(userUUID, targetUsername string) error {
	author, err := s.resolveTarget(targetUsername)
	if err != nil {
		return err
	}
	if author.UUID == userUUID {
		// A user never follows themselves; not an error
		return nil
	}

	if err := s.followRepository.GetOrCreate(userUUID, author.UUID); err != nil {
		return err
	}
	s.Logf("%s now follows %s", userUUID, targetUsername)
	return nil
}

func (s *subscriptionService) Unfollow(userUUID, targetUsername string) error {
	author, err := s.resolveTarget(targetUsername)
	if err != nil {
		return err
	}
	if author.UUID == userUUID {
		return nil
	}

	if err := s.followRepository.Delete(userUUID, author.UUID); err != nil {
		return err
	}
	s.Logf("%s no longer follows %s", userUUID, targetUsername)
	return nil
}

func (s *subscriptionService) resolveTarget(username string) (*entity.User, error) {
	u, err := s.userRepository.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no user with username %q", ErrNotFound, username)
		}
		return nil, err
	}
	return u, nil
}
