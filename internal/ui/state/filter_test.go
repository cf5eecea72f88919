package state

import (
	"reflect"
	"testing"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	list := newTestList("one", "two", "three")
	list.Cursor = 2
	list.SetFilter("two", len("two"))

	if list.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", list.Filter)
	}
	if list.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", list.FilterCursor)
	}
	if list.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", list.Cursor)
	}
	if len(list.Items) != 1 || list.Items[0].Name != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", list.Items)
	}

	if !list.ClearFilter() {
		t.Fatal("expected clear to report a change")
	}
	if list.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", list.Cursor)
	}
	if list.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", list.LastCursor)
	}
	if list.ClearFilter() {
		t.Fatal("expected clearing an empty filter to be a no-op")
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	list := newTestList("alpha")

	if !list.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if list.Filter != "ab" || list.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", list.Filter, list.FilterCursor)
	}

	list.FilterCursor = 1
	if !list.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if list.Filter != "azb" || list.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", list.Filter, list.FilterCursor)
	}

	if !list.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if list.Filter != "ab" || list.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", list.Filter, list.FilterCursor)
	}

	list.SetFilter("abc def", len("abc def"))
	if !list.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if list.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", list.Filter)
	}

	list.SetFilter("abc", 0)
	if list.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	list := newTestList("one", "two")
	list.SetFilter("one two", len("one two"))

	if !list.MoveFilterCursorWordBackward() || list.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", list.FilterCursor)
	}
	if !list.MoveFilterCursor(-1) || list.FilterCursor != 3 {
		t.Fatalf("expected cursor at 3, got %d", list.FilterCursor)
	}
	if !list.MoveFilterCursorEnds(false) || list.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", list.FilterCursor)
	}
	if list.MoveFilterCursor(-1) {
		t.Fatal("expected no movement before start")
	}
	if !list.MoveFilterCursorEnds(true) || list.FilterCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", list.FilterCursor)
	}
}

func TestFilterItems(t *testing.T) {
	items := ItemsFromNames([]string{"Alpha", "Beta"}, "Beta")
	filtered := FilterItems(items, "alp")
	if len(filtered) != 1 || filtered[0].Name != "Alpha" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "ta")
	if len(filtered) != 1 || filtered[0].Name != "Beta" || !filtered[0].Selected {
		t.Fatalf("expected Beta, got %#v", filtered)
	}

	filtered[0].Name = "changed"
	if items[1].Name != "Beta" {
		t.Fatal("expected original slice to remain unchanged")
	}
	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := ItemsFromNames([]string{"first", "second", "third"}, "")

	if idx := BestMatchIndex(items, "Second"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "con"); idx != 1 {
		t.Fatalf("expected substring match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetFilterSelectsFuzzyMatch(t *testing.T) {
	list := NewList(ItemsFromNames([]string{"metrics", "logs"}, ""))
	list.SetFilter("lgs", 3)
	if list.Cursor != 0 {
		t.Fatalf("expected fuzzy match to select first visible item, got %d", list.Cursor)
	}
	if !reflect.DeepEqual(list.Items, []Item{{Name: "logs"}}) {
		t.Fatalf("expected filtered items to contain logs, got %#v", list.Items)
	}
}
