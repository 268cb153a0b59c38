package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mouse-blink/wakatimer/internal/config"
	"github.com/mouse-blink/wakatimer/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typingOpts(minSize, maxIncrements int, jitter float64) config.Typing {
	return config.Typing{
		MinIncrementSize:     minSize,
		MaxIncrementsPerFile: maxIncrements,
		Jitter:               jitter,
	}
}

func assertValidCuts(t *testing.T, content []byte, cuts []int) {
	t.Helper()

	require.NotEmpty(t, cuts)
	assert.Equal(t, len(content), cuts[len(cuts)-1])

	prev := 0
	for i, cut := range cuts {
		if i > 0 || len(content) > 0 {
			assert.Greater(t, cut, prev, "cut %d", i)
		}

		assert.True(t, utf8.Valid(content[:cut]), "prefix %d splits a rune", i)
		prev = cut
	}
}

func TestTypingCuts_SmallContent(t *testing.T) {
	opts := typingOpts(200, 40, 0.3)

	assert.Equal(t, []int{0}, TypingCuts(nil, opts, rng.NewMidpoint()))
	assert.Equal(t, []int{150}, TypingCuts(make([]byte, 150), opts, rng.NewMidpoint()))
	assert.Equal(t, []int{399}, TypingCuts(make([]byte, 399), opts, rng.NewMidpoint()))
}

func TestTypingCuts_EvenlySpacedWithoutJitter(t *testing.T) {
	content := []byte(lines(10, 99))
	require.Len(t, content, 1000)

	cuts := TypingCuts(content, typingOpts(200, 40, 0.3), rng.NewMidpoint())

	assert.Equal(t, []int{200, 400, 600, 800, 1000}, cuts)
}

func TestTypingCuts_SnapsToNearbyLineEnd(t *testing.T) {
	content := []byte(lines(10, 119))
	require.Len(t, content, 1200)

	cuts := TypingCuts(content, typingOpts(200, 40, 0), rng.NewMidpoint())

	assert.Equal(t, []int{240, 400, 600, 840, 1000, 1200}, cuts)
}

func TestTypingCuts_AvoidsSplittingRunes(t *testing.T) {
	content := []byte(strings.Repeat("日", 400))
	require.Len(t, content, 1200)

	cuts := TypingCuts(content, typingOpts(200, 40, 0), rng.NewMidpoint())

	assert.Equal(t, []int{201, 402, 600, 801, 1002, 1200}, cuts)
	assertValidCuts(t, content, cuts)
}

func TestTypingCuts_CapsIncrementCount(t *testing.T) {
	content := []byte(lines(100, 99))

	cuts := TypingCuts(content, typingOpts(200, 8, 0.3), rng.NewSeeded(1))

	assert.LessOrEqual(t, len(cuts), 8)
	assertValidCuts(t, content, cuts)
}

func TestTypingCuts_JitteredCutsStayValid(t *testing.T) {
	content := []byte(strings.Repeat("héllo wörld 日本\n", 300))

	for seed := range uint64(50) {
		cuts := TypingCuts(content, typingOpts(50, 40, 0.9), rng.NewSeeded(seed))
		assertValidCuts(t, content, cuts)
	}
}

func TestTypingCuts_Deterministic(t *testing.T) {
	content := []byte(lines(60, 70))
	opts := typingOpts(100, 40, 0.5)

	assert.Equal(t,
		TypingCuts(content, opts, rng.NewSeeded(42)),
		TypingCuts(content, opts, rng.NewSeeded(42)),
	)
}

// edgeSource answers every integer draw with its upper bound and records the
// ranges it was asked for.
type edgeSource struct {
	rng.Midpoint
	ranges [][2]int
}

func (s *edgeSource) IntBetween(a, b int) int {
	s.ranges = append(s.ranges, [2]int{a, b})
	return b
}

func TestTypingCuts_JitterDrawsWholeBytes(t *testing.T) {
	content := make([]byte, 1000)
	src := &edgeSource{}

	cuts := TypingCuts(content, typingOpts(100, 40, 0.4), src)

	// chunk 100, spread 100*0.4/2 = 20 bytes either way.
	require.Len(t, src.ranges, 9)
	for _, r := range src.ranges {
		assert.Equal(t, [2]int{-20, 20}, r)
	}

	assert.Equal(t, []int{120, 220, 320, 420, 520, 620, 720, 820, 920, 1000}, cuts)
}

func TestTypingCuts_NoJitterNoDraws(t *testing.T) {
	src := &edgeSource{}

	TypingCuts(make([]byte, 1000), typingOpts(100, 40, 0), src)

	assert.Empty(t, src.ranges)
}
