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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	created, err := f.auth.Register("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.NotEmpty(t, created.UUID)

	logged, err := f.auth.Login("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.UUID, logged.UUID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register("alice", "s3cret")
	require.NoError(t, err)

	_, err = f.auth.Login("alice", "guess")
	if !errors.Is(err, ErrWrongCredentials) {
		t.Errorf("Expected ErrWrongCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Login("nobody", "whatever")
	if !errors.Is(err, ErrWrongCredentials) {
		t.Errorf("Expected ErrWrongCredentials, got %v", err)
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register("alice", "s3cret")
	require.NoError(t, err)

	_, err = f.auth.Register("alice", "other")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register("", "s3cret")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for empty username, got %v", err)
	}

	_, err = f.auth.Register("alice", "")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for empty password, got %v", err)
	}
}
