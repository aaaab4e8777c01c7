package mahjong

import (
	"slices"
	"time"

	"github.com/rouhjp/rouh-mahjong-web-sub001/common/cache"
	"github.com/rouhjp/rouh-mahjong-web-sub001/common/log"
)

// Candidate 打出某张后听牌的选择
type Candidate struct {
	Discard        Tile   // 打出的牌（普通牌）
	DiscardOptions []Tile // 实体牌：红5/普通5供 UI 选择
	Waits          []Tile // 听哪些牌
	Ukeire         int    // 有效张数
}

// Searcher 在纯函数之上加一层缓存，可并发使用
type Searcher struct {
	cache *cache.GeneralCache
}

func NewSearcher(maxCost int64, ttl time.Duration) (*Searcher, error) {
	c, err := cache.NewGeneralCache(maxCost, ttl)
	if err != nil {
		return nil, err
	}
	log.Debug("searcher 缓存初始化, maxCost=%d ttl=%s", maxCost, ttl)
	return &Searcher{cache: c}, nil
}

func (s *Searcher) Close() {
	s.cache.Close()
}

// WinningTiles 和了牌，只依赖各种牌的张数，按 Hand34 缓存
func (s *Searcher) WinningTiles(hand []Tile) []Tile {
	requireSize(hand, readySizes...)
	key := "w:" + Hand34FromTiles(hand).key()
	if v, ok := s.cache.Get(key); ok {
		return slices.Clone(v.([]Tile))
	}
	waits := WinningTilesOf(hand)
	log.Debug("searcher 缓存未命中, hand=%s waits=%s", FormatTiles(SortTiles(hand)), FormatTiles(waits))
	s.cache.Set(key, slices.Clone(waits))
	return waits
}

// IsHandReady 是否听牌
func (s *Searcher) IsHandReady(hand []Tile) bool {
	return len(s.WinningTiles(hand)) > 0
}

// SeekCandidates 弃牌后有哪些牌听牌，是否允许立直由调用方判断
func (s *Searcher) SeekCandidates(hand []Tile, visible *Hand34) []Candidate {
	requireSize(hand, completedSizes...)
	var out []Candidate
	for _, kind := range slices.Compact(kindsOf(hand)) {
		options := distinctIdentities(hand, kind)
		h := removeTiles(hand, options[:1])
		waits, ukeire := s.WaitsAndUkeire(h, visible)
		if len(waits) == 0 {
			continue
		}
		out = append(out, Candidate{
			Discard:        kind,
			DiscardOptions: options,
			Waits:          waits,
			Ukeire:         ukeire,
		})
	}
	return out
}

// WaitsAndUkeire 枚举听牌 + 计算进张
func (s *Searcher) WaitsAndUkeire(hand []Tile, visible *Hand34) ([]Tile, int) {
	waits := s.WinningTiles(hand)
	return waits, ukeireByWaits(Hand34FromTiles(hand), waits, visible)
}

// ukeireByWaits 计算听牌的进张数，visible 为场上已见的牌
func ukeireByWaits(h Hand34, waits []Tile, visible *Hand34) int {
	ukeire := 0
	for _, w := range waits {
		add := 4 - h.Count(w)
		if visible != nil {
			add -= visible.Count(w)
		}
		if add > 0 {
			ukeire += add
		}
	}
	return ukeire
}

func kindsOf(hand []Tile) []Tile {
	out := make([]Tile, len(hand))
	for i, t := range hand {
		out[i] = t.Kind()
	}
	slices.Sort(out)
	return out
}

// Shanten 向听数，副露数由张数推出；-1 为和牌，0 为听牌
func (s *Searcher) Shanten(hand []Tile) int {
	if !IsReadySize(len(hand)) && !IsCompletedSize(len(hand)) {
		panic(newArgumentError("unexpected hand size %d", len(hand)))
	}
	h := Hand34FromTiles(hand)
	fixedMelds := (14 - len(hand)) / 3
	key := "s:" + h.key()
	if v, ok := s.cache.Get(key); ok {
		return v.(int)
	}

	best := ShantenNormal(h, fixedMelds)
	if fixedMelds == 0 {
		if v := ShantenChiitoi(h); v < best {
			best = v
		}
		if v := ShantenKokushi(h); v < best {
			best = v
		}
	}
	s.cache.Set(key, best)
	return best
}
