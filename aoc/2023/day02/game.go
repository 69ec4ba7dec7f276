package aoc2023day02

import (
	"fmt"
	"iter"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

type Cube struct {
	Count int
	Color Color
}

// Set is one handful of cubes revealed during a game.
type Set []Cube

type Game struct {
	ID   int
	Sets []Set
}

// Cubes yields every cube count of every set in order.
func (g Game) Cubes() iter.Seq[Cube] {
	return func(yield func(Cube) bool) {
		for _, set := range g.Sets {
			for _, c := range set {
				if !yield(c) {
					return
				}
			}
		}
	}
}

func (g Game) IsPossible(red, green, blue int) bool {
	limits := [...]int{Red: red, Green: green, Blue: blue}
	for c := range g.Cubes() {
		if c.Count > limits[c.Color] {
			return false
		}
	}
	return true
}

// MinimumCubes is the fewest cubes of color the bag must hold for g to be
// possible.
func (g Game) MinimumCubes(color Color) int {
	least := 0
	for c := range g.Cubes() {
		if c.Color == color {
			least = max(least, c.Count)
		}
	}
	return least
}

func (g Game) MinimumPower() int {
	return g.MinimumCubes(Red) * g.MinimumCubes(Green) * g.MinimumCubes(Blue)
}

// Bag holds the number of cubes of each color loaded before the games.
type Bag struct {
	Red   int
	Green int
	Blue  int
}

var DefaultBag = Bag{Red: 12, Green: 13, Blue: 14}

func (b Bag) Allows(g Game) bool {
	return g.IsPossible(b.Red, b.Green, b.Blue)
}
