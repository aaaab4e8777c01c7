package mahjong

import "math/rand"

type Suit int

const (
	SuitMan    Suit = iota // 万子
	SuitPin                // 筒子
	SuitSo                 // 索子
	SuitWind               // 风牌
	SuitDragon             // 三元牌
)

// Tile 牌的种类（含赤五），整数顺序即规范排序：花色 -> 数字 -> 赤五排在普通五之后
type Tile int

const (
	// 万子
	Man1 Tile = iota
	Man2
	Man3
	Man4
	Man5
	Man5Red // 赤五万
	Man6
	Man7
	Man8
	Man9

	// 筒子
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin5Red // 赤五筒
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子
	So1
	So2
	So3
	So4
	So5
	So5Red // 赤五索
	So6
	So7
	So8
	So9

	// 字牌
	East
	South
	West
	North
	White
	Green
	Red

	tileCount = iota
)

// KindCount 不区分赤五时牌的种类数
const KindCount = 34

type tileTraits struct {
	suit   Suit
	number int  // 数牌 1-9；风牌 1-4；三元牌 1-3
	red    bool // 赤五
	index  int  // 34 种下标
	name   string
}

// tileTable 静态牌表，初始化后只读
var tileTable = [tileCount]tileTraits{
	Man1:    {SuitMan, 1, false, 0, "M1"},
	Man2:    {SuitMan, 2, false, 1, "M2"},
	Man3:    {SuitMan, 3, false, 2, "M3"},
	Man4:    {SuitMan, 4, false, 3, "M4"},
	Man5:    {SuitMan, 5, false, 4, "M5"},
	Man5Red: {SuitMan, 5, true, 4, "M5R"},
	Man6:    {SuitMan, 6, false, 5, "M6"},
	Man7:    {SuitMan, 7, false, 6, "M7"},
	Man8:    {SuitMan, 8, false, 7, "M8"},
	Man9:    {SuitMan, 9, false, 8, "M9"},
	Pin1:    {SuitPin, 1, false, 9, "P1"},
	Pin2:    {SuitPin, 2, false, 10, "P2"},
	Pin3:    {SuitPin, 3, false, 11, "P3"},
	Pin4:    {SuitPin, 4, false, 12, "P4"},
	Pin5:    {SuitPin, 5, false, 13, "P5"},
	Pin5Red: {SuitPin, 5, true, 13, "P5R"},
	Pin6:    {SuitPin, 6, false, 14, "P6"},
	Pin7:    {SuitPin, 7, false, 15, "P7"},
	Pin8:    {SuitPin, 8, false, 16, "P8"},
	Pin9:    {SuitPin, 9, false, 17, "P9"},
	So1:     {SuitSo, 1, false, 18, "S1"},
	So2:     {SuitSo, 2, false, 19, "S2"},
	So3:     {SuitSo, 3, false, 20, "S3"},
	So4:     {SuitSo, 4, false, 21, "S4"},
	So5:     {SuitSo, 5, false, 22, "S5"},
	So5Red:  {SuitSo, 5, true, 22, "S5R"},
	So6:     {SuitSo, 6, false, 23, "S6"},
	So7:     {SuitSo, 7, false, 24, "S7"},
	So8:     {SuitSo, 8, false, 25, "S8"},
	So9:     {SuitSo, 9, false, 26, "S9"},
	East:    {SuitWind, 1, false, 27, "WE"},
	South:   {SuitWind, 2, false, 28, "WS"},
	West:    {SuitWind, 3, false, 29, "WW"},
	North:   {SuitWind, 4, false, 30, "WN"},
	White:   {SuitDragon, 1, false, 31, "DW"},
	Green:   {SuitDragon, 2, false, 32, "DG"},
	Red:     {SuitDragon, 3, false, 33, "DR"},
}

// kindTable 34 种下标 -> 普通牌
var kindTable = [KindCount]Tile{
	Man1, Man2, Man3, Man4, Man5, Man6, Man7, Man8, Man9,
	Pin1, Pin2, Pin3, Pin4, Pin5, Pin6, Pin7, Pin8, Pin9,
	So1, So2, So3, So4, So5, So6, So7, So8, So9,
	East, South, West, North, White, Green, Red,
}

// orphanKinds 幺九牌（国士无双所需的 13 种）
var orphanKinds = [13]Tile{
	Man1, Man9,
	Pin1, Pin9,
	So1, So9,
	East, South, West, North,
	White, Green, Red,
}

// Tiles 全部 37 种牌（含赤五），规范顺序
func Tiles() []Tile {
	out := make([]Tile, 0, tileCount)
	for t := Man1; t < tileCount; t++ {
		out = append(out, t)
	}
	return out
}

// Kinds 全部 34 种普通牌
func Kinds() []Tile {
	out := make([]Tile, KindCount)
	copy(out, kindTable[:])
	return out
}

// OrphanKinds 13 种幺九牌
func OrphanKinds() []Tile {
	out := make([]Tile, len(orphanKinds))
	copy(out, orphanKinds[:])
	return out
}

// KindOf 34 种下标对应的普通牌
func KindOf(index int) Tile {
	if index < 0 || index >= KindCount {
		panic(newArgumentError("kind index %d out of range", index))
	}
	return kindTable[index]
}

func (t Tile) Valid() bool {
	return t >= Man1 && t < tileCount
}

func (t Tile) traits() tileTraits {
	if !t.Valid() {
		panic(newArgumentError("unknown tile %d", int(t)))
	}
	return tileTable[t]
}

func (t Tile) Suit() Suit {
	return t.traits().suit
}

// Number 数牌为 1-9，风牌 1-4（东南西北），三元牌 1-3（白发中）
func (t Tile) Number() int {
	return t.traits().number
}

// Index 不区分赤五的 34 种下标
func (t Tile) Index() int {
	return t.traits().index
}

// Kind 去掉赤五标记后的牌
func (t Tile) Kind() Tile {
	return kindTable[t.traits().index]
}

func (t Tile) SameKind(o Tile) bool {
	return t.Index() == o.Index()
}

func (t Tile) IsRed() bool {
	return t.traits().red
}

func (t Tile) IsNumbered() bool {
	return t.Suit() <= SuitSo
}

func (t Tile) IsHonor() bool {
	return !t.IsNumbered()
}

func (t Tile) IsWind() bool {
	return t.Suit() == SuitWind
}

func (t Tile) IsDragon() bool {
	return t.Suit() == SuitDragon
}

func (t Tile) IsTerminal() bool {
	return t.IsNumbered() && (t.Number() == 1 || t.Number() == 9)
}

// IsOrphan 幺九牌：老头牌或字牌
func (t Tile) IsOrphan() bool {
	return t.IsHonor() || t.IsTerminal()
}

func (t Tile) IsFive() bool {
	return t.IsNumbered() && t.Number() == 5
}

// HasNext 同花色是否存在下一张，字牌与 9 没有
func (t Tile) HasNext() bool {
	return t.IsNumbered() && t.Number() < 9
}

// HasPrevious 同花色是否存在上一张，字牌与 1 没有
func (t Tile) HasPrevious() bool {
	return t.IsNumbered() && t.Number() > 1
}

// Next 同花色下一张（普通牌），不存在时 panic
func (t Tile) Next() Tile {
	if !t.HasNext() {
		panic(newArgumentError("tile %s has no next", t))
	}
	return kindTable[t.Index()+1]
}

// Previous 同花色上一张（普通牌），不存在时 panic
func (t Tile) Previous() Tile {
	if !t.HasPrevious() {
		panic(newArgumentError("tile %s has no previous", t))
	}
	return kindTable[t.Index()-1]
}

// Compare 规范排序比较
func Compare(a, b Tile) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t Tile) String() string {
	if !t.Valid() {
		return "??"
	}
	return tileTable[t].name
}

// RedOf 同花色的赤五，非五返回自身
func RedOf(t Tile) Tile {
	switch t.Kind() {
	case Man5:
		return Man5Red
	case Pin5:
		return Pin5Red
	case So5:
		return So5Red
	default:
		return t
	}
}

// PhysicalCount 一副牌中该牌的实体张数
func PhysicalCount(t Tile, useRedFives bool) int {
	switch {
	case !useRedFives && t.IsRed():
		return 0
	case !useRedFives:
		return 4
	case t.IsRed():
		return 1
	case t.IsFive():
		return 3
	default:
		return 4
	}
}

// Catalog 一副牌的全部 136 张，规范顺序
func Catalog(useRedFives bool) []Tile {
	out := make([]Tile, 0, 136)
	for t := Man1; t < tileCount; t++ {
		for i := 0; i < PhysicalCount(t, useRedFives); i++ {
			out = append(out, t)
		}
	}
	return out
}

// TileDeck 洗好的一副牌，只负责按顺序发牌
type TileDeck struct {
	tiles []Tile
	index int // 当前摸牌位置
}

func NewTileDeck(useRedFives bool, rng *rand.Rand) *TileDeck {
	deck := &TileDeck{
		tiles: Catalog(useRedFives),
		index: 0,
	}
	rng.Shuffle(len(deck.tiles), func(i, j int) {
		deck.tiles[i], deck.tiles[j] = deck.tiles[j], deck.tiles[i]
	})
	return deck
}

// Remaining 剩余张数
func (d *TileDeck) Remaining() int {
	return len(d.tiles) - d.index
}

// Draw 摸 n 张，不足时返回 false
func (d *TileDeck) Draw(n int) ([]Tile, bool) {
	if n < 0 || d.Remaining() < n {
		return nil, false
	}
	out := make([]Tile, n)
	copy(out, d.tiles[d.index:d.index+n])
	d.index += n
	return out, true
}
