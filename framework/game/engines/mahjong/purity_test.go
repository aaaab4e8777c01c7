package mahjong

import (
	"fmt"
	"slices"
	"sync"
	"testing"
)

// 所有导出操作都不能修改调用方传入的切片
func TestOperations_DoNotMutateInput(t *testing.T) {
	hands := []string{
		"M1 M1 M1 M2 M3 P7 P8 P9 S5 S5 WE WE WE",
		"M5R M5 M4 M6 P1 P1 P1 S3 S2 S4 DR DR WN",
		"DR DG DW WN WW WS WE S9 S1 P9 P1 M9 M1",
		"M9 M9 M9 M8 M7 M6 M5 M4 M3 M2 M1 M1 M1",
	}
	for _, s := range hands {
		h := hand(t, s)
		orig := slices.Clone(h)
		check := func(op string) {
			t.Helper()
			if !slices.Equal(h, orig) {
				t.Fatalf("%s mutated input: [%s] -> [%s]", op, FormatTiles(orig), FormatTiles(h))
			}
		}

		SortTiles(h)
		check("SortTiles")
		Blocks(h)
		BlockPattern(h)
		check("Blocks")
		IsObviouslyNotReady(h)
		WinningTileCandidates(h)
		check("pattern filters")
		IsHandReady(h)
		WinningTilesOf(h)
		ReadyQuadTilesOf(h)
		IsNineTiles(h, East)
		check("readiness")
		for _, k := range Kinds() {
			IsCompleted(h, k)
			IsSevenPairs(h, k)
			IsThirteenOrphans(h, k)
			Arrange(h, k)
			SelectableStraightBasesOf(h, k)
			SelectableTripleBasesOf(h, k)
			SelectableQuadBasesOf(h, k)
			check("completion/calls with " + k.String())
		}

		h14 := append(slices.Clone(h), Man5Red)
		orig14 := slices.Clone(h14)
		ReadyTilesOf(h14)
		IsObviouslyNotCompleted(h14)
		if !slices.Equal(h14, orig14) {
			t.Fatalf("14-tile operations mutated input: [%s]", FormatTiles(h14))
		}

		base := slices.Clone(h[:2])
		WaitingTilesOf(base)
		if !slices.Equal(base, orig[:2]) {
			t.Fatalf("WaitingTilesOf mutated input")
		}
	}
}

func TestSearcher_DoesNotMutateInput(t *testing.T) {
	s := newTestSearcher(t)
	h := hand(t, "P1 P2 P3 S1 S2 S3 S7 S8 S9 WE WE M5 M5R M6")
	orig := slices.Clone(h)
	s.SeekCandidates(h, nil)
	s.Shanten(h)
	s.WinningTiles(h[:13])
	if !slices.Equal(h, orig) {
		t.Fatalf("searcher mutated input: [%s]", FormatTiles(h))
	}
}

// 多个 goroutine 共享同一个 Searcher，配合 -race 运行
func TestSearcher_ConcurrentUse(t *testing.T) {
	s := newTestSearcher(t)
	hands13 := []string{
		"M1 M1 M1 P2 P3 P4 S7 S8 S9 WE WE M7 M8",
		"M1 M1 M1 M2 M3 M4 M5 M6 M7 M8 M9 M9 M9",
		"M1 M9 P1 P9 S1 S9 WE WS WW WN DW DG DR",
		"M1 M4 M7 P1 P4 P7 S1 S4 S7 WE WS WW DR",
	}
	want := make([][]Tile, len(hands13))
	shanten := make([]int, len(hands13))
	for i, str := range hands13 {
		want[i] = WinningTilesOf(hand(t, str))
		shanten[i] = s.Shanten(hand(t, str))
	}
	hand14 := hand(t, "M1 M1 M1 P2 P3 P4 S7 S8 S9 WE WE M7 M8 S1")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for round := 0; round < 20; round++ {
				i := (g + round) % len(hands13)
				h, err := ParseTiles(hands13[i])
				if err != nil {
					errs <- err
					return
				}
				if got := s.WinningTiles(h); !slices.Equal(got, want[i]) {
					errs <- fmt.Errorf("goroutine %d: winning tiles [%s], want [%s]", g, FormatTiles(got), FormatTiles(want[i]))
					return
				}
				if got := s.Shanten(h); got != shanten[i] {
					errs <- fmt.Errorf("goroutine %d: shanten %d, want %d", g, got, shanten[i])
					return
				}
				if c := s.SeekCandidates(hand14, nil); len(c) != 1 || c[0].Discard != So1 {
					errs <- fmt.Errorf("goroutine %d: unexpected candidates %+v", g, c)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
