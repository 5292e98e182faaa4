/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// A published post. Every post has exactly one author and at most one group.
// PubDate is set once at creation and survives edits. Deleting the author
// cascades to the post, deleting the group only clears the reference.
type Post struct {
	UUID    string    `gorm:"primaryKey" json:"uuid"`        // Unique identifier
	Text    string    `gorm:"not null" json:"text"`          // Body of the post
	PubDate time.Time `gorm:"not null;index" json:"pub-date"` // Time of publication, immutable
	Image   string    `json:"image"`                         // Optional path of an attached image, relative to the media directory

	AuthorUUID string `gorm:"not null;index" json:"author"` // UUID of the owning user
	Author     User   `gorm:"foreignKey:AuthorUUID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`

	GroupUUID *string `gorm:"index" json:"group"` // UUID of the group, nil when the post is ungrouped
	Group     *Group  `gorm:"foreignKey:GroupUUID;references:UUID;constraint:OnDelete:SET NULL" json:"-"`

	Comments []*Comment `gorm:"foreignKey:PostUUID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}
