package flow

import (
	"fmt"
	"strings"
)

const (
	DefaultPageSize = 8
	DefaultColumns  = 2

	// StarMark prefixes the remembered-district shortcut button. It is
	// stripped before the selection is matched against the catalog.
	StarMark = "⭐ "
)

// Page is one rendered slice of a paginated choice list.
type Page struct {
	Rows   [][]string // selectable items arranged by keyboard row
	Nav    []string   // navigation row: previous, indicator, next
	Number int        // clamped page number, 1-based
	Total  int        // total page count, at least 1
}

// Paginate slices items for the requested page. The page number is
// clamped into [1, Total], so walking past either end re-renders the
// boundary page instead of failing. If starred is a member of items it
// is prepended as its own row with the star marker.
func Paginate(items []string, page, pageSize, columns int, starred string) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if columns <= 0 {
		columns = DefaultColumns
	}

	total := (len(items) + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	visible := items[start:end]

	var rows [][]string
	if starred != "" && contains(items, starred) {
		rows = append(rows, []string{StarMark + starred})
	}
	for i := 0; i < len(visible); i += columns {
		j := i + columns
		if j > len(visible) {
			j = len(visible)
		}
		row := make([]string, j-i)
		copy(row, visible[i:j])
		rows = append(rows, row)
	}

	var nav []string
	if page > 1 {
		nav = append(nav, PrevLabel)
	}
	nav = append(nav, fmt.Sprintf("%d/%d", page, total))
	if page < total {
		nav = append(nav, NextLabel)
	}

	return Page{Rows: rows, Nav: nav, Number: page, Total: total}
}

// StripStar removes the starred-shortcut marker from a selection.
func StripStar(s string) string {
	return strings.TrimPrefix(s, StarMark)
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
