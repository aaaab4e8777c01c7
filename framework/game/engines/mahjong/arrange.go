package mahjong

import (
	"fmt"
	"slices"
	"strings"
)

type GroupType int

const (
	GroupInvalid  GroupType = iota
	GroupPair               // 对子（雀头）
	GroupTriplet            // 刻子
	GroupSequence           // 顺子
)

func (g GroupType) String() string {
	switch g {
	case GroupPair:
		return "pair"
	case GroupTriplet:
		return "triplet"
	case GroupSequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// Group 面子或雀头，牌按规范顺序存放
type Group struct {
	Tiles []Tile
}

func NewGroup(tiles ...Tile) Group {
	return Group{Tiles: SortTiles(tiles)}
}

// Type 判定面子种类，不区分赤五
func (g Group) Type() GroupType {
	t := g.Tiles
	switch len(t) {
	case 2:
		if t[0].SameKind(t[1]) {
			return GroupPair
		}
	case 3:
		if t[0].SameKind(t[1]) && t[1].SameKind(t[2]) {
			return GroupTriplet
		}
		if t[0].HasNext() && t[0].Next().SameKind(t[1]) &&
			t[1].HasNext() && t[1].Next().SameKind(t[2]) {
			return GroupSequence
		}
	}
	return GroupInvalid
}

// First 规范顺序的第一张
func (g Group) First() Tile {
	return g.Tiles[0]
}

func (g Group) Equal(o Group) bool {
	return slices.Equal(g.Tiles, o.Tiles)
}

func (g Group) String() string {
	return "[" + FormatTiles(g.Tiles) + "]"
}

// CompareGroups 逐张比较，前缀较短者在前
func CompareGroups(a, b Group) int {
	return slices.Compare(a.Tiles, b.Tiles)
}

// Arrangement 一般形和牌的一种拆法：雀头 + 面子（规范顺序）
type Arrangement struct {
	Head Group
	Body []Group
}

// Groups 雀头在前，面子在后
func (a Arrangement) Groups() []Group {
	out := make([]Group, 0, len(a.Body)+1)
	out = append(out, a.Head)
	return append(out, a.Body...)
}

func (a Arrangement) Equal(o Arrangement) bool {
	return a.Head.Equal(o.Head) && slices.EqualFunc(a.Body, o.Body, Group.Equal)
}

// Triplets 面子中的刻子
func (a Arrangement) Triplets() []Group {
	var out []Group
	for _, g := range a.Body {
		if g.Type() == GroupTriplet {
			out = append(out, g)
		}
	}
	return out
}

func (a Arrangement) String() string {
	parts := make([]string, 0, len(a.Body)+1)
	for _, g := range a.Groups() {
		parts = append(parts, g.String())
	}
	return strings.Join(parts, " ")
}

func newArrangement(head Group, body []Group) Arrangement {
	sorted := slices.Clone(body)
	slices.SortFunc(sorted, CompareGroups)
	return Arrangement{Head: head, Body: sorted}
}

// Arrange 手牌加和了牌的全部一般形拆法（可能为空）。
// 雀头候选为每种至少两张的牌（取前两张实体），剩余牌从左到右拆：
// 前三张同种取刻子，否则取首张与其后继、后继的后继组成顺子，任一步失败则该雀头无解。
// 三个连续种类的刻子另外展开为三组顺子的读法
func Arrange(hand []Tile, tile Tile) []Arrangement {
	requireSize(hand, readySizes...)
	all := SortTiles(withTile(hand, tile))

	var out []Arrangement
	for _, head := range headCandidates(all) {
		body, ok := decomposeBody(removeTiles(all, head.Tiles))
		if !ok {
			continue
		}
		for _, variant := range expandAmbiguity(body) {
			arr := newArrangement(head, variant)
			if !slices.ContainsFunc(out, arr.Equal) {
				out = append(out, arr)
			}
		}
	}
	return out
}

// headCandidates 每种至少两张的牌取前两张作为雀头候选
func headCandidates(sorted []Tile) []Group {
	var heads []Group
	for i := 0; i+1 < len(sorted); i++ {
		if i > 0 && sorted[i-1].SameKind(sorted[i]) {
			continue
		}
		if sorted[i].SameKind(sorted[i+1]) {
			heads = append(heads, NewGroup(sorted[i], sorted[i+1]))
		}
	}
	return heads
}

// removeTiles 复制并按实体各去掉一张
func removeTiles(tiles []Tile, remove []Tile) []Tile {
	out := slices.Clone(tiles)
	for _, r := range remove {
		i := slices.Index(out, r)
		if i < 0 {
			panic(fmt.Errorf("%w: tile %s not present", ErrInconsistentHand, r))
		}
		out = slices.Delete(out, i, i+1)
	}
	return out
}

// indexOfKind 从 from 开始第一张同种牌的位置
func indexOfKind(tiles []Tile, kind Tile, from int) int {
	for i := from; i < len(tiles); i++ {
		if tiles[i].SameKind(kind) {
			return i
		}
	}
	return -1
}

// decomposeBody 将已排序的牌拆成面子，失败返回 false
func decomposeBody(sorted []Tile) ([]Group, bool) {
	if len(sorted)%3 != 0 {
		panic(fmt.Errorf("%w: body of %d tiles", ErrInconsistentHand, len(sorted)))
	}
	rest := slices.Clone(sorted)
	groups := make([]Group, 0, len(rest)/3)
	for len(rest) > 0 {
		first := rest[0]
		if rest[1].SameKind(first) && rest[2].SameKind(first) {
			groups = append(groups, NewGroup(rest[0], rest[1], rest[2]))
			rest = rest[3:]
			continue
		}
		if !first.HasNext() || !first.Next().HasNext() {
			return nil, false
		}
		i := indexOfKind(rest, first.Next(), 1)
		if i < 0 {
			return nil, false
		}
		j := indexOfKind(rest, first.Next().Next(), i+1)
		if j < 0 {
			return nil, false
		}
		groups = append(groups, NewGroup(first, rest[i], rest[j]))
		rest = removeTiles(rest, []Tile{first, rest[i], rest[j]})
	}
	return groups, true
}

// expandAmbiguity 原拆法在前；每组三个连续种类的刻子再给出一种改读为三组顺子的拆法
func expandAmbiguity(groups []Group) [][]Group {
	variants := [][]Group{groups}
	for _, a := range groups {
		if a.Type() != GroupTriplet || !a.First().HasNext() || !a.First().Next().HasNext() {
			continue
		}
		b := findTriplet(groups, a.First().Next())
		c := findTriplet(groups, a.First().Next().Next())
		if b < 0 || c < 0 {
			continue
		}
		variant := make([]Group, 0, len(groups))
		for _, g := range groups {
			if !g.Equal(a) && !g.Equal(groups[b]) && !g.Equal(groups[c]) {
				variant = append(variant, g)
			}
		}
		for k := 0; k < 3; k++ {
			variant = append(variant, NewGroup(a.Tiles[k], groups[b].Tiles[k], groups[c].Tiles[k]))
		}
		variants = append(variants, variant)
	}
	return variants
}

func findTriplet(groups []Group, kind Tile) int {
	for i, g := range groups {
		if g.Type() == GroupTriplet && g.First().SameKind(kind) {
			return i
		}
	}
	return -1
}
