package mahjong

import (
	"slices"
	"strconv"
	"strings"
)

// Hand34 按 34 种计数的手牌（赤五计入普通五）
type Hand34 [KindCount]uint8

func Hand34FromTiles(tiles []Tile) Hand34 {
	var h Hand34
	for _, t := range tiles {
		h[t.Index()]++
	}
	return h
}

// Count 某种牌的张数（赤五与普通五合计）
func (h Hand34) Count(t Tile) int {
	return int(h[t.Index()])
}

// Total 总张数
func (h Hand34) Total() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// Tiles 展开为普通牌，规范顺序
func (h Hand34) Tiles() []Tile {
	out := make([]Tile, 0, h.Total())
	for i, c := range h {
		for j := 0; j < int(c); j++ {
			out = append(out, kindTable[i])
		}
	}
	return out
}

func (h Hand34) key() string {
	var b [KindCount]byte
	for i := 0; i < KindCount; i++ {
		b[i] = byte(h[i])
	}
	return string(b[:])
}

// SortTiles 复制并按规范顺序排序
func SortTiles(tiles []Tile) []Tile {
	out := slices.Clone(tiles)
	slices.Sort(out)
	return out
}

// withTile 复制并追加一张
func withTile(hand []Tile, tile Tile) []Tile {
	out := make([]Tile, 0, len(hand)+1)
	out = append(out, hand...)
	return append(out, tile)
}

// connected 排序后相邻两张是否属于同一块：同种，或同一数牌花色且相差不超过 2
func connected(a, b Tile) bool {
	if a.SameKind(b) {
		return true
	}
	if !a.IsNumbered() || a.Suit() != b.Suit() {
		return false
	}
	d := b.Number() - a.Number()
	if d < 0 {
		d = -d
	}
	return d <= 2
}

// Blocks 排序后切分为极大连续块
func Blocks(tiles []Tile) [][]Tile {
	sorted := SortTiles(tiles)
	var blocks [][]Tile
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || !connected(sorted[i-1], sorted[i]) {
			blocks = append(blocks, sorted[start:i:i])
			start = i
		}
	}
	return blocks
}

// BlockPattern 各块长度，降序
func BlockPattern(tiles []Tile) []int {
	blocks := Blocks(tiles)
	lengths := make([]int, len(blocks))
	for i, b := range blocks {
		lengths[i] = len(b)
	}
	slices.Sort(lengths)
	slices.Reverse(lengths)
	return lengths
}

type patternSet map[string]struct{}

func patternKey(lengths []int) string {
	parts := make([]string, len(lengths))
	for i, n := range lengths {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func newPatternSet(patterns ...[]int) patternSet {
	s := make(patternSet, len(patterns))
	for _, p := range patterns {
		s[patternKey(p)] = struct{}{}
	}
	return s
}

func (s patternSet) contains(lengths []int) bool {
	_, ok := s[patternKey(lengths)]
	return ok
}

// completedPatterns 一般形和牌可能出现的块长划分：恰有一块含雀头（3k+2），其余为 3k
var completedPatterns = newPatternSet(
	// 14 张
	[]int{14}, []int{11, 3}, []int{9, 5}, []int{8, 6}, []int{8, 3, 3}, []int{6, 5, 3},
	[]int{5, 3, 3, 3}, []int{12, 2}, []int{9, 3, 2}, []int{6, 6, 2}, []int{6, 3, 3, 2},
	[]int{3, 3, 3, 3, 2},
	// 11 张
	[]int{11}, []int{8, 3}, []int{6, 5}, []int{5, 3, 3}, []int{9, 2}, []int{6, 3, 2},
	[]int{3, 3, 3, 2},
	// 8 张
	[]int{8}, []int{5, 3}, []int{6, 2}, []int{3, 3, 2},
	// 5 张
	[]int{5}, []int{3, 2},
	// 2 张
	[]int{2},
)

// readyPatterns 一般形听牌可能出现的块长划分。
// 由和牌形中任一块减一得到（减为 0 时去掉该块）。
// 去掉一张使一块断成两块的情形，其划分也都已在此列出
var readyPatterns = newPatternSet(
	// 13 张
	[]int{13}, []int{10, 3}, []int{11, 2}, []int{7, 6}, []int{8, 5}, []int{7, 3, 3},
	[]int{8, 3, 2}, []int{9, 4}, []int{6, 4, 3}, []int{5, 5, 3}, []int{6, 5, 2},
	[]int{4, 3, 3, 3}, []int{5, 3, 3, 2}, []int{12, 1}, []int{9, 3, 1}, []int{9, 2, 2},
	[]int{6, 6, 1}, []int{6, 3, 3, 1}, []int{6, 3, 2, 2}, []int{3, 3, 3, 3, 1},
	[]int{3, 3, 3, 2, 2},
	// 10 张
	[]int{10}, []int{7, 3}, []int{8, 2}, []int{6, 4}, []int{5, 5}, []int{4, 3, 3},
	[]int{5, 3, 2}, []int{9, 1}, []int{6, 3, 1}, []int{6, 2, 2}, []int{3, 3, 3, 1},
	[]int{3, 3, 2, 2},
	// 7 张
	[]int{7}, []int{4, 3}, []int{5, 2}, []int{6, 1}, []int{3, 3, 1}, []int{3, 2, 2},
	// 4 张
	[]int{4}, []int{3, 1}, []int{2, 2},
	// 1 张
	[]int{1},
)

// IsObviouslyNotCompleted 块长划分不在和牌形目录中时，一般形必定不能和牌
func IsObviouslyNotCompleted(hand []Tile) bool {
	requireSize(hand, completedSizes...)
	return !completedPatterns.contains(BlockPattern(hand))
}

// IsObviouslyNotReady 块长划分不在听牌形目录中时，一般形必定没有听牌
func IsObviouslyNotReady(hand []Tile) bool {
	requireSize(hand, readySizes...)
	return !readyPatterns.contains(BlockPattern(hand))
}

// WinningTileCandidates 一般形可能的和了牌（普通牌，规范顺序），是实际和了牌的超集。
// 长度非 3 倍数的块：单张块为其本身（单骑），其余为块内每张牌同花色 ±1 范围内的牌；
// 已持有 4 张的牌排除
func WinningTileCandidates(hand []Tile) []Tile {
	requireSize(hand, readySizes...)
	h := Hand34FromTiles(hand)
	var seen [KindCount]bool
	for _, block := range Blocks(hand) {
		if len(block)%3 == 0 {
			continue
		}
		if len(block) == 1 {
			seen[block[0].Index()] = true
			continue
		}
		for _, t := range block {
			seen[t.Index()] = true
			if t.HasPrevious() {
				seen[t.Previous().Index()] = true
			}
			if t.HasNext() {
				seen[t.Next().Index()] = true
			}
		}
	}
	var out []Tile
	for i, ok := range seen {
		if ok && h[i] < 4 {
			out = append(out, kindTable[i])
		}
	}
	return out
}
