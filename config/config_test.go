package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telepair/lifesearch/internal/params"
)

func TestDefaultUsesUnconstrainedLifeSearch(t *testing.T) {
	c := Default()
	assert.Equal(t, params.Default(), c.Params)
	assert.Equal(t, "B3/S23", c.RuleString)
	assert.True(t, c.Spec.IsLife())
}

func TestSetRuleParsesAndNormalizesString(t *testing.T) {
	c := Default()
	require.NoError(t, c.SetRule("B36/S23"))
	assert.Equal(t, "B36/S23", c.RuleString)
	assert.True(t, c.Spec.Born[6])
}

func TestSetRuleEmptyStringLeavesConfigUnchanged(t *testing.T) {
	c := Default()
	require.NoError(t, c.SetRule(""))
	assert.Equal(t, "B3/S23", c.RuleString)
}

func TestSetRuleInvalidFallsBackToLife(t *testing.T) {
	c := Default()
	c.RuleString = "whatever"
	err := c.SetRule("not-a-rule")
	assert.Error(t, err)
	assert.Equal(t, "B3/S23", c.RuleString)
	assert.True(t, c.Spec.IsLife())
}

func TestValidatePassesOnDefault(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsConflictingInitFlags(t *testing.T) {
	c := Default()
	c.InitFile = "seed.txt"
	c.InitPattern = "glider"
	assert.Error(t, c.Validate())
}

func TestValidateRejectsNegativeFrequencies(t *testing.T) {
	for _, c := range []*Config{
		func() *Config { c := Default(); c.OutputCols = -1; return c }(),
		func() *Config { c := Default(); c.ViewFreq = -1; return c }(),
		func() *Config { c := Default(); c.DumpFreq = -1; return c }(),
	} {
		assert.Error(t, c.Validate())
	}
}

func TestValidateRejectsOutOfBoundsExclude(t *testing.T) {
	c := Default()
	c.Exclude = []Rect{{Row1: 1, Col1: 1, Row2: 10, Col2: 10}}
	assert.Error(t, c.Validate())
}

func TestValidateRejectsOutOfBoundsFreeze(t *testing.T) {
	c := Default()
	c.Freeze = []Cell{{Row: 10, Col: 10}}
	assert.Error(t, c.Validate())
}

func TestValidateAcceptsInBoundsExcludeAndFreeze(t *testing.T) {
	c := Default()
	c.Exclude = []Rect{{Row1: 1, Col1: 1, Row2: 2, Col2: 2}}
	c.Freeze = []Cell{{Row: 3, Col: 3}}
	assert.NoError(t, c.Validate())
}

func TestValidatePropagatesParamsError(t *testing.T) {
	c := Default()
	c.Params = params.Params{RowMax: 0, ColMax: 3, GenMax: 2}
	assert.Error(t, c.Validate())
}
