package mahjong

import (
	"errors"
	"slices"
	"testing"
)

func tiles(types ...Tile) []Tile {
	out := make([]Tile, 0, len(types))
	return append(out, types...)
}

// hand 以牌面记法构造手牌
func hand(t *testing.T, s string) []Tile {
	t.Helper()
	out, err := ParseTiles(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return out
}

func expectTiles(t *testing.T, got, want []Tile) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("expected [%s], got [%s]", FormatTiles(want), FormatTiles(got))
	}
}

// expectArgumentPanic 断言 fn 以 *ArgumentError panic
func expectArgumentPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument panic, got %v", r)
		}
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("expected *ArgumentError, got %T", r)
		}
	}()
	fn()
}
