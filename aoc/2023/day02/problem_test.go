package aoc2023day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	result, err := part1(sample, DefaultBag)
	require.NoError(t, err)
	assert.Equal(t, 8, result)
}

func TestPart2(t *testing.T) {
	result, err := part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 2286, result)
}

func TestMalformedLineAborts(t *testing.T) {
	input := sample + "Game 6 2 red\n"

	_, err := part1(input, DefaultBag)
	assert.ErrorIs(t, err, ErrMalformedLine)

	_, err = part2(input)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestBlankLineIsMalformed(t *testing.T) {
	_, err := part1("Game 1: 1 red\n   \nGame 2: 1 blue\n", DefaultBag)
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")

	_, err = part2("Game 1: 1 red\n\nGame 2: 1 blue\n")
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSolver(t *testing.T) {
	s := NewSolver(Bag{Red: 20, Green: 13, Blue: 15})
	assert.Equal(t, 2, s.Day())

	result, err := s.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 15, result)

	samples := s.Samples()
	require.Len(t, samples, 1)
	assert.Equal(t, 2, samples[0].Part)

	assert.Len(t, NewSolver(DefaultBag).Samples(), 2)
}
