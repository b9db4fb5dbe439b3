package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsUnconstrainedThreeByThreeByTwo(t *testing.T) {
	p := Default()
	assert.Equal(t, 3, p.RowMax)
	assert.Equal(t, 3, p.ColMax)
	assert.Equal(t, 2, p.GenMax)
	assert.NoError(t, p.Validate())
}

func TestValidateRejectsOutOfRangeDimensions(t *testing.T) {
	tests := []Params{
		{RowMax: 0, ColMax: 3, GenMax: 2},
		{RowMax: MaxRows + 1, ColMax: 3, GenMax: 2},
		{RowMax: 3, ColMax: 0, GenMax: 2},
		{RowMax: 3, ColMax: 3, GenMax: 0},
		{RowMax: 3, ColMax: 3, GenMax: MaxGens + 1},
		{RowMax: 3, ColMax: 3, GenMax: 2, RowTrans: MaxTrans + 1},
		{RowMax: 3, ColMax: 3, GenMax: 2, ColTrans: -(MaxTrans + 1)},
	}
	for _, p := range tests {
		assert.Error(t, p.Validate())
	}
}

func TestValidateRequiresSquareGridForDiagonalSymmetry(t *testing.T) {
	assert.Error(t, Params{RowMax: 3, ColMax: 4, GenMax: 1, FwdSym: true}.Validate())
	assert.Error(t, Params{RowMax: 3, ColMax: 4, GenMax: 1, BwdSym: true}.Validate())
	assert.Error(t, Params{RowMax: 3, ColMax: 4, GenMax: 1, FlipQuads: true}.Validate())
	assert.NoError(t, Params{RowMax: 4, ColMax: 4, GenMax: 1, FwdSym: true}.Validate())
}

func TestHasTransform(t *testing.T) {
	assert.False(t, Default().HasTransform())
	assert.True(t, Params{RowTrans: 1}.HasTransform())
	assert.True(t, Params{ColTrans: 1}.HasTransform())
	assert.True(t, Params{FlipRows: 1}.HasTransform())
	assert.True(t, Params{FlipCols: 1}.HasTransform())
	assert.True(t, Params{FlipQuads: true}.HasTransform())
}

func TestHasSymmetry(t *testing.T) {
	assert.False(t, Default().HasSymmetry())
	assert.True(t, Params{RowSym: 1}.HasSymmetry())
	assert.True(t, Params{ColSym: 1}.HasSymmetry())
	assert.True(t, Params{PointSym: true}.HasSymmetry())
	assert.True(t, Params{FwdSym: true}.HasSymmetry())
	assert.True(t, Params{BwdSym: true}.HasSymmetry())
}

func TestFieldsListsEveryDumpColumnInOrder(t *testing.T) {
	assert.Len(t, Fields, 27)
	assert.Equal(t, "curStatus", Fields[0])
	assert.Equal(t, "followGens", Fields[len(Fields)-1])
}
