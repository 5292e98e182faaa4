/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package pagination

import "strconv"

// Every feed shows this many posts per page.
const PerPage = 10

// One window of a feed. Number is always valid: out-of-range requests are
// clamped, never rejected, and an empty feed still has one (empty) page.
type Page struct {
	Number   int // 1-based page number after clamping
	NumPages int // Total number of pages, at least 1
	Count    int // Total number of items across all pages
	Offset   int // Offset of the first item of this page
	Limit    int // Maximum number of items on this page
}

func (p Page) HasPrevious() bool { return p.Number > 1 }
func (p Page) HasNext() bool     { return p.Number < p.NumPages }
func (p Page) Previous() int     { return p.Number - 1 }
func (p Page) Next() int         { return p.Number + 1 }

// Get clamps the requested page number against the total item count and
// returns the resulting window. Numbers below 1 clamp to the first page,
// numbers past the end clamp to the last one.
func Get(number int, count int64) Page {
	numPages := int((count + PerPage - 1) / PerPage)
	if numPages < 1 {
		numPages = 1
	}

	if number < 1 {
		number = 1
	} else if number > numPages {
		number = numPages
	}

	return Page{
		Number:   number,
		NumPages: numPages,
		Count:    int(count),
		Offset:   (number - 1) * PerPage,
		Limit:    PerPage,
	}
}

// ParseNumber reads a page number from its query-string form.
// Anything non-numeric falls back to page 1.
func ParseNumber(raw string) int {
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return number
}
