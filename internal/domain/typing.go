package domain

import (
	"bytes"
	"unicode/utf8"

	"github.com/mouse-blink/wakatimer/internal/config"
	"github.com/mouse-blink/wakatimer/internal/rng"
)

// TypingCuts splits content into the end offsets of successive typing
// snapshots. The offsets are strictly increasing and the last one is always
// len(content), so content[:cut] grows monotonically up to the full file.
//
// Empty content and content shorter than MinIncrementSize yield a single cut.
// Otherwise the count is len/MinIncrementSize capped at MaxIncrementsPerFile.
// Each nominal cut is shifted by a whole number of bytes, up to Jitter/2 of
// a chunk, moved forward to the end of the current line when one is near,
// and kept off UTF-8 continuation bytes.
func TypingCuts(content []byte, opts config.Typing, src rng.Source) []int {
	size := len(content)

	minSize := max(opts.MinIncrementSize, 1)
	if size < minSize {
		return []int{size}
	}

	n := min(size/minSize, max(opts.MaxIncrementsPerFile, 1))
	if n <= 1 {
		return []int{size}
	}

	chunk := float64(size) / float64(n)
	window := int(chunk / 4)
	cuts := make([]int, 0, n)
	prev := 0

	for i := 1; i < n; i++ {
		cut := int(chunk * float64(i))
		if spread := int(opts.Jitter * chunk / 2); spread > 0 {
			cut += src.IntBetween(-spread, spread)
		}

		cut = min(max(cut, prev+1), size-1)
		cut = snapToLineEnd(content, cut, window)
		cut = alignRune(content, cut)

		if cut <= prev || cut >= size {
			continue
		}

		cuts = append(cuts, cut)
		prev = cut
	}

	return append(cuts, size)
}

// snapToLineEnd moves cut just past the next newline within window bytes.
func snapToLineEnd(content []byte, cut, window int) int {
	if window <= 0 || cut >= len(content) {
		return cut
	}

	end := min(cut+window, len(content))
	if i := bytes.IndexByte(content[cut:end], '\n'); i >= 0 {
		return cut + i + 1
	}

	return cut
}

func alignRune(content []byte, cut int) int {
	for cut < len(content) && !utf8.RuneStart(content[cut]) {
		cut++
	}

	return cut
}
