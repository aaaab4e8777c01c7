package mahjong

import (
	"fmt"
	"strings"
)

var notationTable = func() map[string]Tile {
	m := make(map[string]Tile, tileCount)
	for t := Man1; t < tileCount; t++ {
		m[tileTable[t].name] = t
	}
	return m
}()

// ParseTile 解析单张牌，如 "M1"、"P5R"、"WE"、"DR"
func ParseTile(s string) (Tile, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrEmptyTile
	}
	t, ok := notationTable[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTile, s)
	}
	return t, nil
}

// ParseTiles 解析以空格或逗号分隔的牌
func ParseTiles(s string) ([]Tile, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]Tile, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// FormatTiles 以空格分隔输出
func FormatTiles(tiles []Tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
