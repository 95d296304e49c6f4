package params

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{"defaults", "", 15, 1, 0},
		{"explicit", "limit=10&page=3", 10, 3, 20},
		{"limit capped", "limit=100", 30, 1, 0},
		{"garbage ignored", "limit=abc&page=-2", 15, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tc.query)
			p := ParsePagination(q)
			if p.Limit != tc.wantLimit || p.Page != tc.wantPage || p.Offset != tc.wantOffset {
				t.Fatalf("got limit=%d page=%d offset=%d, want %d/%d/%d",
					p.Limit, p.Page, p.Offset, tc.wantLimit, tc.wantPage, tc.wantOffset)
			}
		})
	}
}

func TestComputeMeta(t *testing.T) {
	p := Pagination{Limit: 10, Page: 2, Offset: 10}
	p.ComputeMeta(35)

	if p.TotalPages != 4 {
		t.Fatalf("got %d total pages, want 4", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("got has_next=%v has_prev=%v, want both true", p.HasNext, p.HasPrev)
	}
}
