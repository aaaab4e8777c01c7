package mahjong

// 向听数：-1 为和牌，0 为听牌。
// 一般形按块计算：相距 3 以上或不同花色的牌不能组成面子或搭子，块与块互不影响，
// 先枚举每个块的拆法，再在块之间组合。

// blockShape 一个块的一种拆法
type blockShape struct {
	melds    int // 面子
	partials int // 搭子（含对子）
	head     int // 雀头 0/1
}

// maxPartials 超过 4 的搭子不会再降低向听数
const maxPartials = 4

// ShantenNormal 一般形向听数，fixedMelds 为副露的面子数
func ShantenNormal(h Hand34, fixedMelds int) int {
	shapes := map[blockShape]struct{}{{melds: fixedMelds}: {}}
	for _, block := range Blocks(h.Tiles()) {
		next := make(map[blockShape]struct{})
		for _, b := range blockShapes(block) {
			for s := range shapes {
				if s.head+b.head > 1 {
					continue
				}
				next[blockShape{
					melds:    s.melds + b.melds,
					partials: min(s.partials+b.partials, maxPartials),
					head:     s.head + b.head,
				}] = struct{}{}
			}
		}
		shapes = next
	}

	best := 8
	for s := range shapes {
		usable := min(s.partials, 4-s.melds)
		if v := 8 - 2*s.melds - max(usable, 0) - s.head; v < best {
			best = v
		}
	}
	return best
}

// blockShapes 枚举一个块的全部拆法（去重）。
// 块内是同一花色，按数字计数；字牌块只有一种牌
func blockShapes(block []Tile) []blockShape {
	var ranks [12]int // 下标为数字，留出 +2 的空位
	for _, t := range block {
		ranks[t.Number()]++
	}
	seen := make(map[blockShape]struct{})
	walkBlock(&ranks, 1, block[0].IsNumbered(), blockShape{}, seen)

	out := make([]blockShape, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}

// walkBlock 从数字 n 开始，处理最小的剩余牌：刻子、顺子、雀头、对子搭子、两面/嵌张搭子或孤张
func walkBlock(ranks *[12]int, n int, numbered bool, s blockShape, seen map[blockShape]struct{}) {
	for n <= 9 && ranks[n] == 0 {
		n++
	}
	if n > 9 {
		s.partials = min(s.partials, maxPartials)
		seen[s] = struct{}{}
		return
	}

	take := func(counts []int, next blockShape) {
		for i, c := range counts {
			ranks[n+i] -= c
		}
		walkBlock(ranks, n, numbered, next, seen)
		for i, c := range counts {
			ranks[n+i] += c
		}
	}

	meld, partial := s, s
	meld.melds++
	partial.partials++

	if ranks[n] >= 3 {
		take([]int{3}, meld)
	}
	if numbered && ranks[n+1] > 0 && ranks[n+2] > 0 {
		take([]int{1, 1, 1}, meld)
	}
	if ranks[n] >= 2 {
		if s.head == 0 {
			head := s
			head.head = 1
			take([]int{2}, head)
		}
		take([]int{2}, partial)
	}
	if numbered && ranks[n+1] > 0 {
		take([]int{1, 1}, partial)
	}
	if numbered && ranks[n+2] > 0 {
		take([]int{1, 0, 1}, partial)
	}
	take([]int{1}, s)
}

// ShantenChiitoi 七对子向听数：同种 4 张只算一对，不足 7 种时需要另外摸入新种类
func ShantenChiitoi(h Hand34) int {
	pairs, kinds := 0, 0
	for _, c := range h {
		if c > 0 {
			kinds++
		}
		if c >= 2 {
			pairs++
		}
	}
	return 6 - pairs + max(7-kinds, 0)
}

// ShantenKokushi 国士无双向听数：13 减去已有的幺九种类数，有幺九对子再减一
func ShantenKokushi(h Hand34) int {
	kinds, paired := 0, 0
	for _, t := range orphanKinds {
		switch c := h.Count(t); {
		case c >= 2:
			paired = 1
			kinds++
		case c == 1:
			kinds++
		}
	}
	return 13 - kinds - paired
}
