package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telepair/lifesearch/internal/rule"
)

func blinkerGrid() *Grid {
	g := NewGrid(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)
	return g
}

func TestStepBlinkerFlipsOrientation(t *testing.T) {
	g := blinkerGrid()
	next := g.Step(rule.Life)

	assert.False(t, next.At(2, 1))
	assert.True(t, next.At(1, 2))
	assert.True(t, next.At(2, 2))
	assert.True(t, next.At(3, 2))
	assert.False(t, next.At(2, 3))
}

func TestStepTwiceReturnsToOriginal(t *testing.T) {
	g := blinkerGrid()
	after2 := g.Step(rule.Life).Step(rule.Life)
	assert.True(t, g.Equal(after2))
}

func TestVerifyPeriodAcceptsBlinker(t *testing.T) {
	g := blinkerGrid()
	assert.True(t, VerifyPeriod(g, rule.Life, 2, 0, 0, false, false))
}

func TestVerifyPeriodRejectsWrongGeneration(t *testing.T) {
	g := blinkerGrid()
	assert.False(t, VerifyPeriod(g, rule.Life, 1, 0, 0, false, false))
}

func TestTranslatedShiftsOnCells(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(1, 1, true)

	shifted := g.Translated(1, 2, false, false)
	assert.True(t, shifted.At(2, 3))
	assert.False(t, shifted.At(1, 1))
}

func TestTranslatedFlipsRowsAndCols(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, true)

	flipped := g.Translated(0, 0, true, true)
	assert.True(t, flipped.At(3, 3))
}

func TestSetAndAtWrapToroidally(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(-1, 4, true)
	assert.True(t, g.At(2, 1))
}

func TestEqualDetectsDifference(t *testing.T) {
	a := NewGrid(3, 3)
	b := NewGrid(3, 3)
	assert.True(t, a.Equal(b))

	b.Set(0, 0, true)
	assert.False(t, a.Equal(b))
}
