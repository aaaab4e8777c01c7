package mahjong

import (
	"fmt"
	"slices"
)

// identitiesOf 手牌中某种牌的全部实体（规范顺序，赤五在后）
func identitiesOf(hand []Tile, kind Tile) []Tile {
	var out []Tile
	for _, t := range SortTiles(hand) {
		if t.SameKind(kind) {
			out = append(out, t)
		}
	}
	return out
}

// distinctIdentities 去重后的实体
func distinctIdentities(hand []Tile, kind Tile) []Tile {
	return slices.Compact(identitiesOf(hand, kind))
}

// combinations 从已排序的牌中取 k 张的全部组合，按牌面去重
func combinations(sorted []Tile, k int) [][]Tile {
	var out [][]Tile
	var pick func(start int, chosen []Tile)
	pick = func(start int, chosen []Tile) {
		if len(chosen) == k {
			base := slices.Clone(chosen)
			if !slices.ContainsFunc(out, func(b []Tile) bool { return slices.Equal(b, base) }) {
				out = append(out, base)
			}
			return
		}
		for i := start; i < len(sorted); i++ {
			pick(i+1, append(chosen, sorted[i]))
		}
	}
	pick(0, make([]Tile, 0, k))
	return out
}

// sortBases 规范排序：逐张比较
func sortBases(bases [][]Tile) [][]Tile {
	slices.SortFunc(bases, func(a, b []Tile) int { return slices.Compare(a, b) })
	return bases
}

// SelectableStraightBasesOf 吃：手牌中能与打出牌组成顺子的两张组合
func SelectableStraightBasesOf(hand []Tile, discarded Tile) [][]Tile {
	requireSize(hand, readySizes...)
	if !discarded.IsNumbered() {
		return nil
	}
	n := discarded.Number()
	var out [][]Tile
	for _, offsets := range [][2]int{{-2, -1}, {-1, 1}, {1, 2}} {
		a, b := n+offsets[0], n+offsets[1]
		if a < 1 || b > 9 {
			continue
		}
		base := discarded.Index() - n
		for _, x := range distinctIdentities(hand, kindTable[base+a]) {
			for _, y := range distinctIdentities(hand, kindTable[base+b]) {
				out = append(out, []Tile{x, y})
			}
		}
	}
	return sortBases(out)
}

// SelectableTripleBasesOf 碰：手牌中与打出牌同种的两张组合（赤五与普通五分别列出）
func SelectableTripleBasesOf(hand []Tile, discarded Tile) [][]Tile {
	requireSize(hand, readySizes...)
	return sortBases(combinations(identitiesOf(hand, discarded), 2))
}

// SelectableQuadBasesOf 明杠：手牌中与打出牌同种的三张
func SelectableQuadBasesOf(hand []Tile, discarded Tile) [][]Tile {
	requireSize(hand, readySizes...)
	return sortBases(combinations(identitiesOf(hand, discarded), 3))
}

// WaitingTilesOf 两张搭子等待的牌：对子等其本身，两面/边张等两端，嵌张等中间
func WaitingTilesOf(base []Tile) ([]Tile, error) {
	if len(base) != 2 {
		return nil, fmt.Errorf("%w: waiting base must be 2 tiles, got %d", ErrInvalidArgument, len(base))
	}
	lo, hi := base[0].Kind(), base[1].Kind()
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []Tile{lo}, nil
	}
	if !lo.IsNumbered() || lo.Suit() != hi.Suit() {
		return nil, nil
	}
	var out []Tile
	switch hi.Number() - lo.Number() {
	case 1:
		if lo.HasPrevious() {
			out = append(out, lo.Previous())
		}
		if hi.HasNext() {
			out = append(out, hi.Next())
		}
	case 2:
		out = append(out, lo.Next())
	}
	return out, nil
}

// ReadyQuadTilesOf 听牌后可暗杠的牌：手中恰有 3 张，且在每张和了牌的每种拆法中都作为刻子出现
func ReadyQuadTilesOf(hand []Tile) []Tile {
	requireSize(hand, readySizes...)
	h := Hand34FromTiles(hand)
	eligible := make(map[Tile]bool)
	for i, c := range h {
		if c == 3 {
			eligible[kindTable[i]] = true
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	waits := WinningTilesOf(hand)
	if len(waits) == 0 {
		return nil
	}
	for _, w := range waits {
		arrangements := Arrange(hand, w)
		if len(arrangements) == 0 {
			// 只能以特殊形和牌
			return nil
		}
		for _, arr := range arrangements {
			present := make(map[Tile]bool)
			for _, g := range arr.Triplets() {
				present[g.First().Kind()] = true
			}
			for k := range eligible {
				if !present[k] {
					delete(eligible, k)
				}
			}
		}
	}
	out := make([]Tile, 0, len(eligible))
	for k := range eligible {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
