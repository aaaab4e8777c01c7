package app

import (
	"fmt"
	"io"
	"time"

	"github.com/rouhjp/rouh-mahjong-web-sub001/common/config"
	"github.com/rouhjp/rouh-mahjong-web-sub001/framework/game/engines/mahjong"
)

// parseHand 解析并检查张数，validSize 为 mahjong.IsReadySize 或 mahjong.IsCompletedSize
func parseHand(s string, validSize func(int) bool) ([]mahjong.Tile, error) {
	tiles, err := mahjong.ParseTiles(s)
	if err != nil {
		return nil, err
	}
	if !validSize(len(tiles)) {
		return nil, fmt.Errorf("%w: unexpected hand size %d", mahjong.ErrInvalidArgument, len(tiles))
	}
	return tiles, nil
}

// NewSearcher 按配置创建带缓存的搜索器
func NewSearcher(conf *config.Config) (*mahjong.Searcher, error) {
	ttl := time.Duration(conf.Searcher.TTLSeconds) * time.Second
	return mahjong.NewSearcher(conf.Searcher.MaxCost, ttl)
}

// Ready 输出听牌信息
func Ready(w io.Writer, handArg string) error {
	hand, err := parseHand(handArg, mahjong.IsReadySize)
	if err != nil {
		return err
	}
	ready := mahjong.IsHandReady(hand)
	fmt.Fprintf(w, "hand:    %s\n", mahjong.FormatTiles(mahjong.SortTiles(hand)))
	fmt.Fprintf(w, "ready:   %t\n", ready)
	if !ready {
		return nil
	}
	fmt.Fprintf(w, "winning: %s\n", mahjong.FormatTiles(mahjong.WinningTilesOf(hand)))
	if quads := mahjong.ReadyQuadTilesOf(hand); len(quads) > 0 {
		fmt.Fprintf(w, "quads:   %s\n", mahjong.FormatTiles(quads))
	}
	return nil
}

// Arrange 输出和牌判断与拆法
func Arrange(w io.Writer, handArg, tileArg string) error {
	hand, err := parseHand(handArg, mahjong.IsReadySize)
	if err != nil {
		return err
	}
	tile, err := mahjong.ParseTile(tileArg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "completed: %t\n", mahjong.IsCompleted(hand, tile))
	if len(hand) == 13 {
		if mahjong.IsSevenPairs(hand, tile) {
			fmt.Fprintln(w, "form: seven pairs")
		}
		if mahjong.IsThirteenOrphans(hand, tile) {
			fmt.Fprintln(w, "form: thirteen orphans")
		}
	}
	for i, arr := range mahjong.Arrange(hand, tile) {
		fmt.Fprintf(w, "#%d %s\n", i+1, arr)
	}
	return nil
}

// Discard 输出打出后听牌的选择
func Discard(w io.Writer, s *mahjong.Searcher, handArg string) error {
	hand, err := parseHand(handArg, mahjong.IsCompletedSize)
	if err != nil {
		return err
	}
	candidates := s.SeekCandidates(hand, nil)
	if len(candidates) == 0 {
		fmt.Fprintf(w, "no ready discard, shanten=%d\n", s.Shanten(hand))
		return nil
	}
	for _, c := range candidates {
		fmt.Fprintf(w, "discard %s -> waits %s (ukeire %d)\n",
			mahjong.FormatTiles(c.DiscardOptions), mahjong.FormatTiles(c.Waits), c.Ukeire)
	}
	return nil
}

// Calls 输出吃碰杠的可选组合
func Calls(w io.Writer, handArg, discardedArg string) error {
	hand, err := parseHand(handArg, mahjong.IsReadySize)
	if err != nil {
		return err
	}
	discarded, err := mahjong.ParseTile(discardedArg)
	if err != nil {
		return err
	}
	printBases(w, "chi", mahjong.SelectableStraightBasesOf(hand, discarded))
	printBases(w, "pon", mahjong.SelectableTripleBasesOf(hand, discarded))
	printBases(w, "kan", mahjong.SelectableQuadBasesOf(hand, discarded))
	return nil
}

func printBases(w io.Writer, name string, bases [][]mahjong.Tile) {
	for _, b := range bases {
		fmt.Fprintf(w, "%s: [%s]\n", name, mahjong.FormatTiles(b))
	}
}
