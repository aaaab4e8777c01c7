package mahjong

import (
	"math/rand"
	"slices"
	"testing"
)

func newTestSearcher(t *testing.T) *Searcher {
	t.Helper()
	s, err := NewSearcher(1<<12, 0)
	if err != nil {
		t.Fatalf("new searcher: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestSearcher_WinningTilesCached(t *testing.T) {
	s := newTestSearcher(t)
	h := hand(t, "M1 M1 M1 P2 P3 P4 S7 S8 S9 WE WE M7 M8")
	expectTiles(t, s.WinningTiles(h), tiles(Man6, Man9))
	s.cache.Wait()

	key := "w:" + Hand34FromTiles(h).key()
	if _, ok := s.cache.Get(key); !ok {
		t.Fatalf("expected cached winning tiles")
	}
	// 修改返回值不影响缓存
	got := s.WinningTiles(h)
	got[0] = Red
	expectTiles(t, s.WinningTiles(h), tiles(Man6, Man9))
	if !s.IsHandReady(h) {
		t.Fatalf("expected ready hand")
	}
}

func TestSearcher_SeekCandidates(t *testing.T) {
	s := newTestSearcher(t)
	candidates := s.SeekCandidates(hand(t, "M1 M1 M1 P2 P3 P4 S7 S8 S9 WE WE M7 M8 S1"), nil)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(candidates), candidates)
	}
	c := candidates[0]
	if c.Discard != So1 || c.Ukeire != 8 {
		t.Fatalf("unexpected candidate %+v", c)
	}
	expectTiles(t, c.Waits, tiles(Man6, Man9))
	expectTiles(t, c.DiscardOptions, tiles(So1))

	var visible Hand34
	visible[Man6.Index()] = 3
	candidates = s.SeekCandidates(hand(t, "M1 M1 M1 P2 P3 P4 S7 S8 S9 WE WE M7 M8 S1"), &visible)
	if candidates[0].Ukeire != 5 {
		t.Fatalf("expected visible tiles to reduce ukeire, got %d", candidates[0].Ukeire)
	}
}

func TestSearcher_SeekCandidatesRedFive(t *testing.T) {
	s := newTestSearcher(t)
	candidates := s.SeekCandidates(hand(t, "P1 P2 P3 S1 S2 S3 S7 S8 S9 WE WE M5 M5R M6"), nil)
	discards := make([]Tile, 0, len(candidates))
	for _, c := range candidates {
		discards = append(discards, c.Discard)
	}
	expectTiles(t, discards, tiles(Man5, Man6))
	expectTiles(t, candidates[0].DiscardOptions, tiles(Man5, Man5Red))
	expectTiles(t, candidates[0].Waits, tiles(Man4, Man7))
	expectTiles(t, candidates[1].Waits, tiles(Man5, East))
}

func TestSearcher_Shanten(t *testing.T) {
	s := newTestSearcher(t)
	cases := []struct {
		hand string
		want int
	}{
		{"M1 M1 M1 P2 P3 P4 S7 S8 S9 WE WE M7 M8", 0},
		{"M1 M9 P1 P9 S1 S9 WE WS WW WN DW DG DR", 0},
		{"M1 M1 M9 M9 P2 P2 P8 P8 S3 S3 WE WE DR", 0},
		{"M1 M2 M3 P1 P2 P3 S1 S2 S3 M7 M8 M9 WE WE", -1},
		{"M1 M2 M3 P1 P2 P3 S1 S2 S3 M7 M8 WE DR", 1},
		{"P4 P5 DW DW", 0},
		{"M1 M4", 0},
	}
	for _, c := range cases {
		if got := s.Shanten(hand(t, c.hand)); got != c.want {
			t.Errorf("%s: expected shanten %d, got %d", c.hand, c.want, got)
		}
	}
	expectArgumentPanic(t, func() { s.Shanten(hand(t, "M1 M2 M3")) })
}

func TestSearcher_MatchesPureFunctions(t *testing.T) {
	s := newTestSearcher(t)
	deck := Catalog(true)
	for start := 0; start+13 <= len(deck); start += 7 {
		h := deck[start : start+13]
		if !slices.Equal(s.WinningTiles(h), WinningTilesOf(h)) {
			t.Fatalf("searcher disagrees on %s", FormatTiles(h))
		}
	}
}

func TestShantenNormal_PairsCountAsPartials(t *testing.T) {
	// 三组对子：一组作雀头，其余两组作搭子
	h := Hand34FromTiles(hand(t, "M1 M1 P1 P1 S1 S1 WE M5 P5 S5 S9 DR DG"))
	if got := ShantenNormal(h, 0); got != 5 {
		t.Fatalf("expected shanten 5, got %d", got)
	}
	// 块内多种拆法取最优：M1 M2 M3 M3 M4 M5 可读作两组顺子
	h = Hand34FromTiles(hand(t, "M1 M2 M3 M3 M4 M5 P7 P8 S2 S2 WE DR DG"))
	if got := ShantenNormal(h, 0); got != 2 {
		t.Fatalf("expected shanten 2, got %d", got)
	}
}

func TestShanten_AgreesWithCompletion(t *testing.T) {
	s := newTestSearcher(t)
	deck := NewTileDeck(true, rand.New(rand.NewSource(11)))
	for i := 0; i < 300; i++ {
		dealt, ok := deck.Draw(14)
		if !ok {
			deck = NewTileDeck(true, rand.New(rand.NewSource(int64(i))))
			continue
		}
		h13, drawn := dealt[:13], dealt[13]

		sh := s.Shanten(h13)
		if sh < 0 {
			t.Fatalf("13 tiles cannot be completed: %s", FormatTiles(h13))
		}
		oneAway := slices.ContainsFunc(Kinds(), func(k Tile) bool { return IsCompleted(h13, k) })
		if (sh == 0) != oneAway {
			t.Fatalf("shanten %d disagrees with completion on %s", sh, FormatTiles(h13))
		}
		if (s.Shanten(dealt) == -1) != IsCompleted(h13, drawn) {
			t.Fatalf("shanten -1 disagrees with IsCompleted on %s + %s", FormatTiles(h13), drawn)
		}
	}

	// 听牌手牌
	for _, str := range []string{
		"M1 M1 M1 M2 M3 M4 M5 M6 M7 M8 M9 M9 M9",
		"M1 M1 M9 M9 P2 P2 P8 P8 S3 S3 WE WE DR",
		"M1 M1 M1 M2 M3 P7 P8 P9 S5 S5 WE WE WE",
	} {
		if got := s.Shanten(hand(t, str)); got != 0 {
			t.Fatalf("%s: expected shanten 0, got %d", str, got)
		}
	}
}
