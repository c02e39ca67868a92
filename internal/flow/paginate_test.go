package flow_test

import (
	"fmt"
	"testing"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i+1)
	}
	return items
}

func TestPaginateTotalPages(t *testing.T) {
	p := flow.Paginate(makeItems(60), 1, 8, 2, "")
	if p.Total != 8 {
		t.Fatalf("Total = %d, want 8", p.Total)
	}

	if p := flow.Paginate(nil, 1, 8, 2, ""); p.Total != 1 {
		t.Fatalf("empty list Total = %d, want 1", p.Total)
	}
}

func TestPaginateClamping(t *testing.T) {
	items := makeItems(60)

	if p := flow.Paginate(items, 0, 8, 2, ""); p.Number != 1 {
		t.Errorf("page 0 clamped to %d, want 1", p.Number)
	}
	if p := flow.Paginate(items, 99, 8, 2, ""); p.Number != 8 {
		t.Errorf("page 99 clamped to %d, want 8", p.Number)
	}
}

func TestPaginateNavRow(t *testing.T) {
	items := makeItems(60)

	first := flow.Paginate(items, 1, 8, 2, "")
	if len(first.Nav) != 2 || first.Nav[0] != "1/8" || first.Nav[1] != flow.NextLabel {
		t.Errorf("page 1 nav = %v, want [1/8 next]", first.Nav)
	}

	last := flow.Paginate(items, 8, 8, 2, "")
	if len(last.Nav) != 2 || last.Nav[0] != flow.PrevLabel || last.Nav[1] != "8/8" {
		t.Errorf("last page nav = %v, want [prev 8/8]", last.Nav)
	}

	mid := flow.Paginate(items, 4, 8, 2, "")
	if len(mid.Nav) != 3 {
		t.Errorf("mid page nav = %v, want prev/indicator/next", mid.Nav)
	}
}

func TestPaginateRowLayout(t *testing.T) {
	p := flow.Paginate(makeItems(60), 1, 8, 2, "")
	if len(p.Rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(p.Rows))
	}
	for i, row := range p.Rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d items, want 2", i, len(row))
		}
	}
	if p.Rows[0][0] != "item-01" || p.Rows[3][1] != "item-08" {
		t.Errorf("unexpected slice: first=%q last=%q", p.Rows[0][0], p.Rows[3][1])
	}

	// 60 items: last page holds items 57-60 in two rows.
	tail := flow.Paginate(makeItems(60), 8, 8, 2, "")
	if len(tail.Rows) != 2 || tail.Rows[1][1] != "item-60" {
		t.Errorf("last page rows = %v", tail.Rows)
	}
}

func TestPaginateStarred(t *testing.T) {
	items := makeItems(60)

	p := flow.Paginate(items, 3, 8, 2, "item-05")
	if len(p.Rows) != 5 {
		t.Fatalf("starred page rows = %d, want 5", len(p.Rows))
	}
	if p.Rows[0][0] != flow.StarMark+"item-05" {
		t.Errorf("starred row = %v", p.Rows[0])
	}
	if flow.StripStar(p.Rows[0][0]) != "item-05" {
		t.Errorf("StripStar(%q) != item-05", p.Rows[0][0])
	}

	// A remembered value no longer in the list is not offered.
	p = flow.Paginate(items, 1, 8, 2, "gone")
	if p.Rows[0][0] != "item-01" {
		t.Errorf("unexpected starred row for non-member: %v", p.Rows[0])
	}
}
