package thermo_test

import (
	"testing"

	"github.com/partizangames/cgt/cgt"
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/nimber"
	"github.com/partizangames/cgt/thermo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcreteScenario1 covers spec.md §8 scenario 1: {0|0}=*1, temperature
// 0, left_stop=right_stop=0.
func TestConcreteScenario1(t *testing.T) {
	star1 := cgt.FromOptions([]cgt.Value{cgt.Zero()}, []cgt.Value{cgt.Zero()})
	assert.True(t, dyadic.Eq(thermo.Temperature(star1), dyadic.Zero))
	assert.True(t, dyadic.Eq(thermo.LeftStop(star1), dyadic.Zero))
	assert.True(t, dyadic.Eq(thermo.RightStop(star1), dyadic.Zero))
}

// TestConcreteScenario2 covers spec.md §8 scenario 2: switch(1,-1),
// temperature 1, mean 0.
func TestConcreteScenario2(t *testing.T) {
	sw := cgt.Switch(cgt.Integer(1), cgt.Integer(-1))
	assert.True(t, dyadic.Eq(thermo.Temperature(sw), dyadic.One))
	assert.True(t, dyadic.Eq(thermo.Mean(sw), dyadic.Zero))
	assert.True(t, dyadic.Eq(thermo.LeftStop(sw), dyadic.FromInt(1)))
	assert.True(t, dyadic.Eq(thermo.RightStop(sw), dyadic.FromInt(-1)))
}

func TestTemperatureOfNumberIsSentinel(t *testing.T) {
	for _, v := range []cgt.Value{cgt.Zero(), cgt.Integer(5), cgt.Integer(-3), cgt.Number(dyadic.New(1, 2))} {
		assert.True(t, dyadic.Eq(thermo.Temperature(v), dyadic.FromInt(-1)), "v=%s", v.String())
	}
}

func TestTemperatureBounds(t *testing.T) {
	values := []cgt.Value{
		cgt.Zero(),
		cgt.Integer(1),
		cgt.Star(nimber.New(1)),
		cgt.Switch(cgt.Integer(2), cgt.Integer(-2)),
	}
	for _, v := range values {
		tau := thermo.Temperature(v)
		assert.True(t, dyadic.Geq(tau, dyadic.FromInt(-1)), "v=%s tau=%s", v.String(), tau.String())

		ls, rs := thermo.LeftStop(v), thermo.RightStop(v)
		mean := thermo.Mean(v)
		assert.True(t, dyadic.Geq(ls, mean), "v=%s", v.String())
		assert.True(t, dyadic.Geq(mean, rs), "v=%s", v.String())
	}
}

func TestCoolNumberIsIdentity(t *testing.T) {
	v := cgt.Integer(3)
	cooled, err := thermo.Cool(v, dyadic.FromInt(2))
	require.NoError(t, err)
	assert.True(t, cgt.Eq(cooled, v))
}

// TestCoolSwitchAtTemperatureYieldsMeanPlusStar exercises the classic
// thermography fact that cooling a switch exactly to its temperature
// does not land on the pure mean but on mean+* (the two scaffold
// trajectories meet but the position retains first-player advantage of
// size *).
func TestCoolSwitchAtTemperatureYieldsMeanPlusStar(t *testing.T) {
	sw := cgt.Switch(cgt.Integer(1), cgt.Integer(-1))
	cooled, err := thermo.Cool(sw, thermo.Temperature(sw))
	require.NoError(t, err)
	assert.True(t, cgt.Eq(cooled, cgt.Star(nimber.New(1))))
}

// TestCoolSwitchAboveTemperatureYieldsPureMean verifies cooling strictly
// past the mast temperature fully resolves to the pure mean number.
func TestCoolSwitchAboveTemperatureYieldsPureMean(t *testing.T) {
	sw := cgt.Switch(cgt.Integer(1), cgt.Integer(-1))
	above := dyadic.Add(thermo.Temperature(sw), dyadic.One)
	cooled, err := thermo.Cool(sw, above)
	require.NoError(t, err)
	assert.True(t, cgt.Eq(cooled, cgt.Zero()))
}

func TestHeatNumberProducesSwitch(t *testing.T) {
	v := cgt.Integer(2)
	heated, err := thermo.Heat(v, dyadic.FromInt(1))
	require.NoError(t, err)
	assert.True(t, dyadic.Eq(thermo.LeftStop(heated), dyadic.FromInt(3)))
	assert.True(t, dyadic.Eq(thermo.RightStop(heated), dyadic.FromInt(1)))
}

func TestCoolRejectsBelowSentinel(t *testing.T) {
	_, err := thermo.Cool(cgt.Zero(), dyadic.FromInt(-2))
	assert.ErrorIs(t, err, thermo.ErrNegativeCoolant)
}

func TestBuildAssemblesThermograph(t *testing.T) {
	sw := cgt.Switch(cgt.Integer(1), cgt.Integer(-1))
	th := thermo.Build(sw)
	assert.True(t, dyadic.Eq(th.Temperature, dyadic.One))
	assert.True(t, dyadic.Eq(th.Mean, dyadic.Zero))
}
