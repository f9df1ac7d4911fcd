// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"cloudeng.io/algo/container/heap"
)

// DateRange represents an inclusive range of dates.
type DateRange struct {
	from, to Ordinal
}

// NewDateRange returns a DateRange for the from/to dates. If the from
// date is later than the to date then they are swapped.
func NewDateRange(from, to Date) DateRange {
	f, t := from.Ordinal(), to.Ordinal()
	if f > t {
		f, t = t, f
	}
	return DateRange{from: f, to: t}
}

// From returns the first date in the range.
func (dr DateRange) From() Date {
	return dr.from.Date()
}

// To returns the last date in the range.
func (dr DateRange) To() Date {
	return dr.to.Date()
}

// Len returns the number of days in the range.
func (dr DateRange) Len() int64 {
	return int64(dr.to-dr.from) + 1
}

// Contains returns true if d is within the range.
func (dr DateRange) Contains(d Date) bool {
	o := d.Ordinal()
	return o >= dr.from && o <= dr.to
}

// Dates returns an iterator that yields each date in the range.
func (dr DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		d := dr.From()
		for o := dr.from; o <= dr.to; o++ {
			if !yield(d) {
				return
			}
			d = d.Tomorrow()
		}
	}
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s - %s", dr.From(), dr.To())
}

type DateRangeList []DateRange

// Sort sorts the list by from date, and then by to date.
func (drl DateRangeList) Sort() {
	slices.SortFunc(drl, func(a, b DateRange) int {
		if a.from != b.from {
			return cmp.Compare(a.from, b.from)
		}
		return cmp.Compare(a.to, b.to)
	})
}

// Merge returns a new list of date ranges in which overlapping or adjacent
// ranges are merged. The list is assumed to be sorted.
func (drl DateRangeList) Merge() DateRangeList {
	if len(drl) == 0 {
		return drl
	}
	merged := make(DateRangeList, 0, len(drl))
	cur := drl[0]
	for _, dr := range drl[1:] {
		if dr.from <= cur.to+1 {
			cur.to = max(cur.to, dr.to)
			continue
		}
		merged = append(merged, cur)
		cur = dr
	}
	return slices.Clip(append(merged, cur))
}

func (drl DateRangeList) String() string {
	var out strings.Builder
	for i, dr := range drl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(dr.String())
	}
	return out.String()
}

type DateList []Date

// Sort sorts the list into chronological order.
func (dl DateList) Sort() {
	slices.SortFunc(dl, Date.Compare)
}

// Contains returns true if d is in the list.
func (dl DateList) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

// Merge returns a new list of date ranges that merges consecutive dates
// into ranges. The date list is assumed to be sorted.
func (dl DateList) Merge() DateRangeList {
	if len(dl) == 0 {
		return nil
	}
	var drl DateRangeList
	from := dl[0].Ordinal()
	to := from
	for _, d := range dl[1:] {
		cur := d.Ordinal()
		if cur == to {
			continue
		}
		if cur == to+1 {
			to = cur
			continue
		}
		drl = append(drl, DateRange{from: from, to: to})
		from, to = cur, cur
	}
	return slices.Clip(append(drl, DateRange{from: from, to: to}))
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// listCursor is the next unmerged date in one of the lists being merged.
type listCursor struct {
	ordinal Ordinal
	list    int
	pos     int
}

func (lc listCursor) Less(o listCursor) bool {
	return lc.ordinal < o.ordinal
}

// MergeDateLists merges the supplied sorted lists into a single sorted
// list without duplicates.
func MergeDateLists(lists ...DateList) DateList {
	size := 0
	for _, l := range lists {
		size += len(l)
	}
	h := make(heap.Heap[listCursor], 0, len(lists))
	for i, l := range lists {
		if len(l) > 0 {
			h.Push(listCursor{ordinal: l[0].Ordinal(), list: i})
		}
	}
	merged := make(DateList, 0, size)
	for h.Len() > 0 {
		c := h.Pop()
		if n := len(merged); n == 0 || merged[n-1].Ordinal() != c.ordinal {
			merged = append(merged, lists[c.list][c.pos])
		}
		if c.pos++; c.pos < len(lists[c.list]) {
			c.ordinal = lists[c.list][c.pos].Ordinal()
			h.Push(c)
		}
	}
	return slices.Clip(merged)
}
