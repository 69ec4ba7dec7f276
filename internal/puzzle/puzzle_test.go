package puzzle_test

import (
	"testing"

	"github.com/povarna/generative-ai-with-go/adventofcode/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := puzzle.NewRegistry()

	require.NoError(t, registry.Register(newSolver(ctrl, 2), newSolver(ctrl, 1)))
	assert.Equal(t, []int{1, 2}, registry.Days())

	s, err := registry.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Day())

	_, err = registry.Get(3)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	err = registry.Register(newSolver(ctrl, 1))
	assert.ErrorIs(t, err, puzzle.ErrDuplicateDay)
}

func TestRegistry_Empty(t *testing.T) {
	assert.Empty(t, puzzle.NewRegistry().Days())
}
