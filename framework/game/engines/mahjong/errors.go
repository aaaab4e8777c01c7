package mahjong

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidArgument 调用方违反了参数约定（张数、牌面等），属于调用方 bug
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInconsistentHand 拆解过程中的内部不一致
	ErrInconsistentHand = errors.New("inconsistent hand")
)

// 牌面解析错误
var (
	ErrEmptyTile   = errors.New("empty tile notation")
	ErrUnknownTile = errors.New("unknown tile notation")
)

// ArgumentError 参数错误，引擎以 panic(*ArgumentError) 的方式抛出
type ArgumentError struct {
	msg string
}

func newArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string { return "invalid argument: " + e.msg }

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// requireSize 张数约定检查
func requireSize(tiles []Tile, sizes ...int) {
	for _, n := range sizes {
		if len(tiles) == n {
			return
		}
	}
	panic(newArgumentError("expected %v tiles, got %d", sizes, len(tiles)))
}

// IsReadySize 是否为听牌判断所用的张数（3k+1）
func IsReadySize(n int) bool {
	return slices.Contains(readySizes, n)
}

// IsCompletedSize 是否为和牌判断所用的张数（3k+2）
func IsCompletedSize(n int) bool {
	return slices.Contains(completedSizes, n)
}

// 副露后手牌张数：3k+1 用于听牌判断，3k+2 用于和牌判断
var (
	readySizes     = []int{13, 10, 7, 4, 1}
	completedSizes = []int{14, 11, 8, 5, 2}
)
