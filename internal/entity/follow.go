/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// A directed follow edge: User receives Author's posts in their follow feed.
// The composite unique index backs up the service-level get-or-create, so at
// most one edge per (user, author) pair can ever exist. Self edges are kept
// out at the service boundary, not here.
type Follow struct {
	UUID      string    `gorm:"primaryKey" json:"uuid"`         // Unique identifier
	CreatedAt time.Time `gorm:"not null" json:"created-at"`     // Time the edge was created

	UserUUID string `gorm:"not null;index;uniqueIndex:idx_follow_edge" json:"user"` // UUID of the follower
	User     User   `gorm:"foreignKey:UserUUID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`

	AuthorUUID string `gorm:"not null;index;uniqueIndex:idx_follow_edge" json:"author"` // UUID of the followed author
	Author     User   `gorm:"foreignKey:AuthorUUID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}
