/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClampsRequestedNumber(t *testing.T) {
	cases := []struct {
		name       string
		number     int
		count      int64
		wantNumber int
		wantPages  int
		wantOffset int
	}{
		{"first page of many", 1, 25, 1, 3, 0},
		{"middle page", 2, 25, 2, 3, 10},
		{"last partial page", 3, 25, 3, 3, 20},
		{"past the end clamps to last", 99, 25, 3, 3, 20},
		{"zero clamps to first", 0, 25, 1, 3, 0},
		{"negative clamps to first", -5, 25, 1, 3, 0},
		{"empty feed still has one page", 7, 0, 1, 1, 0},
		{"exact multiple of the page size", 2, 20, 2, 2, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			page := Get(c.number, c.count)

			assert.Equal(t, c.wantNumber, page.Number)
			assert.Equal(t, c.wantPages, page.NumPages)
			assert.Equal(t, c.wantOffset, page.Offset)
			assert.Equal(t, PerPage, page.Limit)
		})
	}
}

func TestPageNavigation(t *testing.T) {
	first := Get(1, 25)
	if first.HasPrevious() {
		t.Error("First page reports a previous page")
	}
	if !first.HasNext() {
		t.Error("First page of three reports no next page")
	}

	last := Get(3, 25)
	if !last.HasPrevious() {
		t.Error("Last page reports no previous page")
	}
	if last.HasNext() {
		t.Error("Last page reports a next page")
	}
	assert.Equal(t, 2, last.Previous())

	only := Get(1, 5)
	if only.HasPrevious() || only.HasNext() {
		t.Error("Single page reports neighbours")
	}
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 3, ParseNumber("3"))
	assert.Equal(t, 1, ParseNumber(""))
	assert.Equal(t, 1, ParseNumber("banana"))
	assert.Equal(t, -2, ParseNumber("-2")) // clamping happens in Get, not here
}
