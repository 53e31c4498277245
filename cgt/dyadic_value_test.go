package cgt_test

import (
	"testing"

	"github.com/partizangames/cgt/cgt"
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/nimber"
	"github.com/stretchr/testify/assert"
)

// TestConcreteScenario1 covers spec.md §8 scenario 1: {0|0} = *1.
func TestConcreteScenario1(t *testing.T) {
	zero := cgt.Zero()
	v := cgt.FromOptions([]cgt.Value{zero}, []cgt.Value{zero})
	assert.True(t, cgt.Eq(v, cgt.Star(nimber.New(1))))
	assert.Equal(t, "*1", v.String())
}

// TestConcreteScenario2 covers spec.md §8 scenario 2: {1|-1} = switch(1,-1).
func TestConcreteScenario2(t *testing.T) {
	one := cgt.Integer(1)
	negOne := cgt.Integer(-1)
	v := cgt.FromOptions([]cgt.Value{one}, []cgt.Value{negOne})
	assert.True(t, cgt.Eq(v, cgt.Switch(one, negOne)))
	assert.Equal(t, "{1 | -1}", v.String())
}

// TestConcreteScenario3 covers spec.md §8 scenario 3: number addition.
func TestConcreteScenario3(t *testing.T) {
	one := cgt.Integer(1)
	assert.True(t, cgt.Eq(cgt.Add(one, one), cgt.Integer(2)))

	half := cgt.Number(dyadic.New(1, 1))
	assert.True(t, cgt.Eq(cgt.Add(half, half), cgt.Integer(1)))
}

func TestZeroIsAdditiveIdentity(t *testing.T) {
	values := sampleValues()
	for _, v := range values {
		assert.True(t, cgt.Eq(cgt.Add(v, cgt.Zero()), v), "v=%s", v.String())
	}
}

func TestAdditionCommutative(t *testing.T) {
	values := sampleValues()
	for _, v := range values {
		for _, w := range values {
			assert.True(t, cgt.Eq(cgt.Add(v, w), cgt.Add(w, v)), "v=%s w=%s", v.String(), w.String())
		}
	}
}

func TestAdditionAssociative(t *testing.T) {
	values := sampleValues()
	for _, u := range values {
		for _, v := range values {
			for _, w := range values {
				lhs := cgt.Add(cgt.Add(u, v), w)
				rhs := cgt.Add(u, cgt.Add(v, w))
				assert.True(t, cgt.Eq(lhs, rhs), "u=%s v=%s w=%s", u.String(), v.String(), w.String())
			}
		}
	}
}

func TestNegationInvolution(t *testing.T) {
	for _, v := range sampleValues() {
		assert.True(t, cgt.Eq(cgt.Neg(cgt.Neg(v)), v), "v=%s", v.String())
	}
}

func TestNegationIsAdditiveInverse(t *testing.T) {
	for _, v := range sampleValues() {
		assert.True(t, cgt.Eq(cgt.Add(v, cgt.Neg(v)), cgt.Zero()), "v=%s", v.String())
	}
}

func TestOrderReflexiveTransitiveAntisymmetric(t *testing.T) {
	values := sampleValues()
	for _, v := range values {
		assert.True(t, cgt.Leq(v, v), "reflexive: v=%s", v.String())
	}
	for _, u := range values {
		for _, v := range values {
			for _, w := range values {
				if cgt.Leq(u, v) && cgt.Leq(v, w) {
					assert.True(t, cgt.Leq(u, w), "transitive: u=%s v=%s w=%s", u.String(), v.String(), w.String())
				}
			}
		}
	}
	for _, v := range values {
		for _, w := range values {
			if cgt.Leq(v, w) && cgt.Leq(w, v) {
				assert.True(t, cgt.Eq(v, w), "antisymmetric: v=%s w=%s", v.String(), w.String())
			}
		}
	}
}

func TestOrderCompatibleWithAddition(t *testing.T) {
	values := sampleValues()
	for _, v := range values {
		for _, w := range values {
			if !cgt.Leq(v, w) {
				continue
			}
			for _, u := range values {
				assert.True(t, cgt.Leq(cgt.Add(v, u), cgt.Add(w, u)),
					"v=%s w=%s u=%s", v.String(), w.String(), u.String())
			}
		}
	}
}

func TestCanonicalFormIdempotence(t *testing.T) {
	for _, v := range sampleValues() {
		rebuilt := cgt.FromOptions(v.LeftOptions(), v.RightOptions())
		assert.True(t, cgt.Eq(rebuilt, v), "v=%s", v.String())
	}
}

func TestInterningUniqueness(t *testing.T) {
	values := sampleValues()
	for _, v := range values {
		for _, w := range values {
			eq := cgt.Eq(v, w)
			sameHandle := v.Handle() == w.Handle()
			assert.Equal(t, eq, sameHandle, "v=%s w=%s", v.String(), w.String())
		}
	}
}

func TestNimberRoundtrip(t *testing.T) {
	for n := 0; n < 8; n++ {
		sn := cgt.Star(nimber.New(n))
		assert.True(t, cgt.Eq(cgt.Add(sn, sn), cgt.Zero()), "n=%d", n)
		for m := 0; m < 8; m++ {
			sm := cgt.Star(nimber.New(m))
			want := cgt.Star(nimber.New(n ^ m))
			assert.True(t, cgt.Eq(cgt.Add(sn, sm), want), "n=%d m=%d", n, m)
		}
	}
}

func sampleValues() []cgt.Value {
	return []cgt.Value{
		cgt.Zero(),
		cgt.Integer(1),
		cgt.Integer(-1),
		cgt.Integer(2),
		cgt.Number(dyadic.New(1, 1)),
		cgt.Number(dyadic.New(-1, 1)),
		cgt.Star(nimber.New(1)),
		cgt.Star(nimber.New(2)),
		cgt.Switch(cgt.Integer(1), cgt.Integer(-1)),
	}
}
