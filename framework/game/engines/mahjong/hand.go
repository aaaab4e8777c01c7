package mahjong

import "slices"

// IsSevenPairs 七对子：13 张手牌加一张后恰为 7 种各 2 张
func IsSevenPairs(hand []Tile, tile Tile) bool {
	requireSize(hand, 13)
	return isSevenPairsShape(Hand34FromTiles(withTile(hand, tile)))
}

// IsThirteenOrphans 国士无双：13 张手牌加一张后恰好覆盖 13 种幺九牌
func IsThirteenOrphans(hand []Tile, tile Tile) bool {
	requireSize(hand, 13)
	return isThirteenOrphansShape(Hand34FromTiles(withTile(hand, tile)))
}

func isSevenPairsShape(h Hand34) bool {
	pairs := 0
	for _, c := range h {
		switch c {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}

func isThirteenOrphansShape(h Hand34) bool {
	if h.Total() != 14 {
		return false
	}
	for _, t := range orphanKinds {
		if h.Count(t) == 0 {
			return false
		}
	}
	// 14 张全部是幺九牌
	n := 0
	for _, t := range orphanKinds {
		n += h.Count(t)
	}
	return n == 14
}

// sevenPairsWait 七对子听牌时的单骑牌：7 种中 6 种 2 张、1 种 1 张
func sevenPairsWait(hand []Tile) (Tile, bool) {
	h := Hand34FromTiles(hand)
	kinds, pairs := 0, 0
	var single Tile
	for i, c := range h {
		switch c {
		case 0:
			continue
		case 1:
			single = kindTable[i]
		case 2:
			pairs++
		default:
			return 0, false
		}
		kinds++
	}
	if kinds != 7 || pairs != 6 {
		return 0, false
	}
	return single, true
}

// thirteenOrphansWaits 国士无双听牌时的和了牌：13 面听或缺一种
func thirteenOrphansWaits(hand []Tile) []Tile {
	h := Hand34FromTiles(hand)
	n, distinct, doubled := 0, 0, 0
	var missing Tile
	for _, t := range orphanKinds {
		c := h.Count(t)
		n += c
		switch c {
		case 0:
			missing = t
		case 1:
			distinct++
		case 2:
			distinct++
			doubled++
		default:
			return nil
		}
	}
	switch {
	case n != 13:
		return nil
	case distinct == 13:
		return OrphanKinds()
	case distinct == 12 && doubled == 1:
		return []Tile{missing}
	default:
		return nil
	}
}

// specialWinningTiles 七对子与国士无双的和了牌
func specialWinningTiles(hand []Tile) []Tile {
	if len(hand) != 13 {
		return nil
	}
	var out []Tile
	if t, ok := sevenPairsWait(hand); ok {
		out = append(out, t)
	}
	for _, t := range thirteenOrphansWaits(hand) {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// isStandardCompleted 一般形和牌：先用块长目录排除，再实际拆解
func isStandardCompleted(hand []Tile, tile Tile) bool {
	if IsObviouslyNotCompleted(withTile(hand, tile)) {
		return false
	}
	return len(Arrange(hand, tile)) > 0
}

// IsCompleted 手牌加 tile 是否和牌（国士无双、七对子、一般形分别判断）
func IsCompleted(hand []Tile, tile Tile) bool {
	requireSize(hand, readySizes...)
	if len(hand) == 13 {
		all := Hand34FromTiles(withTile(hand, tile))
		if isThirteenOrphansShape(all) || isSevenPairsShape(all) {
			return true
		}
	}
	return isStandardCompleted(hand, tile)
}

// IsHandReady 是否听牌
func IsHandReady(hand []Tile) bool {
	requireSize(hand, readySizes...)
	if len(specialWinningTiles(hand)) > 0 {
		return true
	}
	if IsObviouslyNotReady(hand) {
		return false
	}
	for _, t := range WinningTileCandidates(hand) {
		if isStandardCompleted(hand, t) {
			return true
		}
	}
	return false
}

// WinningTilesOf 全部和了牌（普通牌，规范顺序）
func WinningTilesOf(hand []Tile) []Tile {
	requireSize(hand, readySizes...)
	out := specialWinningTiles(hand)
	if !IsObviouslyNotReady(hand) {
		for _, t := range WinningTileCandidates(hand) {
			if slices.Contains(out, t) {
				continue
			}
			if isStandardCompleted(hand, t) {
				out = append(out, t)
			}
		}
	}
	slices.Sort(out)
	return out
}

// ReadyTilesOf 打出后能听牌的牌（区分赤五，规范顺序）
func ReadyTilesOf(hand []Tile) []Tile {
	requireSize(hand, completedSizes...)
	var out []Tile
	for _, t := range SortTiles(hand) {
		if slices.Contains(out, t) {
			continue
		}
		if IsHandReady(removeTiles(hand, []Tile{t})) {
			out = append(out, t)
		}
	}
	return out
}

// IsNineTiles 九种九牌：手牌加摸牌中幺九牌的种类数不少于 9
func IsNineTiles(hand []Tile, drawn Tile) bool {
	requireSize(hand, 13)
	h := Hand34FromTiles(withTile(hand, drawn))
	kinds := 0
	for _, t := range orphanKinds {
		if h.Count(t) > 0 {
			kinds++
		}
	}
	return kinds >= 9
}
