package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 10, 3},
		{23, 0, 3}, // invalid size falls back to the default
		{5, 1, 5},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.n, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{1, 3, 1},
		{0, 3, 1},
		{-4, 3, 1},
		{3, 3, 3},
		{9, 3, 3},
		{2, 0, 1},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}

func TestPage_LastPage(t *testing.T) {
	rows := reportRows()
	got := Page(rows, 10, 3)
	if diff := cmp.Diff(ids(rows[20:]), ids(got)); diff != "" {
		t.Fatalf("page 3 (-want +got):\n%s", diff)
	}
}

func TestPage_OutOfRangeIsClamped(t *testing.T) {
	rows := reportRows()
	if diff := cmp.Diff(ids(rows[20:]), ids(Page(rows, 10, 42))); diff != "" {
		t.Fatalf("high page (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ids(rows[:10]), ids(Page(rows, 10, -1))); diff != "" {
		t.Fatalf("low page (-want +got):\n%s", diff)
	}
}

func TestPage_Empty(t *testing.T) {
	if got := Page(nil, 10, 1); len(got) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(got))
	}
}

func TestPage_CoverageAcrossSizes(t *testing.T) {
	rows := reportRows()
	for size := 1; size <= 25; size++ {
		var all []Row
		total := TotalPages(len(rows), size)
		for p := 1; p <= total; p++ {
			page := Page(rows, size, p)
			if len(page) == 0 || len(page) > size {
				t.Fatalf("size %d page %d has %d rows", size, p, len(page))
			}
			all = append(all, page...)
		}
		if diff := cmp.Diff(ids(rows), ids(all)); diff != "" {
			t.Fatalf("size %d: pages do not reconstruct the view:\n%s", size, diff)
		}
	}
}

func TestPagerWindow(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           Pager
	}{
		{
			name:    "single page hides pager",
			current: 1, total: 1,
			want: Pager{Visible: false, Current: 1, Total: 1, Pages: []int{1}},
		},
		{
			name:    "few pages",
			current: 2, total: 3,
			want: Pager{Visible: true, Current: 2, Total: 3, Pages: []int{1, 2, 3}, HasPrev: true, HasNext: true},
		},
		{
			name:    "start of long range",
			current: 1, total: 10,
			want: Pager{
				Visible: true, Current: 1, Total: 10, Pages: []int{1, 2, 3, 4, 5},
				ShowLast: true, TrailingEllipsis: true, HasNext: true,
			},
		},
		{
			name:    "window adjacent to first page",
			current: 4, total: 10,
			want: Pager{
				Visible: true, Current: 4, Total: 10, Pages: []int{2, 3, 4, 5, 6},
				ShowFirst: true, ShowLast: true, TrailingEllipsis: true, HasPrev: true, HasNext: true,
			},
		},
		{
			name:    "middle of long range",
			current: 5, total: 10,
			want: Pager{
				Visible: true, Current: 5, Total: 10, Pages: []int{3, 4, 5, 6, 7},
				ShowFirst: true, LeadingEllipsis: true, ShowLast: true, TrailingEllipsis: true,
				HasPrev: true, HasNext: true,
			},
		},
		{
			name:    "end of long range",
			current: 10, total: 10,
			want: Pager{
				Visible: true, Current: 10, Total: 10, Pages: []int{6, 7, 8, 9, 10},
				ShowFirst: true, LeadingEllipsis: true, HasPrev: true,
			},
		},
		{
			name:    "stale page is clamped",
			current: 99, total: 3,
			want: Pager{Visible: true, Current: 3, Total: 3, Pages: []int{1, 2, 3}, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PagerWindow(tt.current, tt.total, 5)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}
