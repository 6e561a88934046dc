// Package ease provides transition functions that remap normalized
// animation progress.
//
// Every function maps progress in [0, 1] to an eased value with exact
// endpoints: f(0) == 0 and f(1) == 1. Values in between are not necessarily
// inside [0, 1]; the back, elastic and bounce families deliberately
// overshoot.
package ease

import "math"

// Func remaps normalized progress. Implementations must satisfy
// f(0) == 0 and f(1) == 1 exactly.
type Func func(progress float64) float64

// Linear returns progress unchanged.
func Linear(p float64) float64 { return p }

// -------------------------------------------------------------------
// Quadratic
// -------------------------------------------------------------------

// InQuad is the quadratic ease-in.
func InQuad(p float64) float64 { return p * p }

// OutQuad is the quadratic ease-out.
func OutQuad(p float64) float64 { return -p * (p - 2) }

// InOutQuad is the quadratic ease-in-out.
func InOutQuad(p float64) float64 {
	p *= 2
	if p < 1 {
		return 0.5 * p * p
	}
	p--
	return -0.5 * (p*(p-2) - 1)
}

// -------------------------------------------------------------------
// Cubic
// -------------------------------------------------------------------

// InCubic is the cubic ease-in.
func InCubic(p float64) float64 { return p * p * p }

// OutCubic is the cubic ease-out.
func OutCubic(p float64) float64 {
	p--
	return p*p*p + 1
}

// InOutCubic is the cubic ease-in-out.
func InOutCubic(p float64) float64 {
	p *= 2
	if p < 1 {
		return 0.5 * p * p * p
	}
	p -= 2
	return 0.5 * (p*p*p + 2)
}

// -------------------------------------------------------------------
// Quartic
// -------------------------------------------------------------------

// InQuart is the quartic ease-in.
func InQuart(p float64) float64 { return p * p * p * p }

// OutQuart is the quartic ease-out.
func OutQuart(p float64) float64 {
	p--
	return -(p*p*p*p - 1)
}

// InOutQuart is the quartic ease-in-out.
func InOutQuart(p float64) float64 {
	p *= 2
	if p < 1 {
		return 0.5 * p * p * p * p
	}
	p -= 2
	return -0.5 * (p*p*p*p - 2)
}

// -------------------------------------------------------------------
// Quintic
// -------------------------------------------------------------------

// InQuint is the quintic ease-in.
func InQuint(p float64) float64 { return p * p * p * p * p }

// OutQuint is the quintic ease-out.
func OutQuint(p float64) float64 {
	p--
	return p*p*p*p*p + 1
}

// InOutQuint is the quintic ease-in-out.
func InOutQuint(p float64) float64 {
	p *= 2
	if p < 1 {
		return 0.5 * p * p * p * p * p
	}
	p -= 2
	return 0.5 * (p*p*p*p*p + 2)
}

// -------------------------------------------------------------------
// Sinusoidal
// -------------------------------------------------------------------

// InSine is the sinusoidal ease-in.
func InSine(p float64) float64 {
	if p == 1 {
		return 1
	}
	return 1 - math.Cos(p*math.Pi/2)
}

// OutSine is the sinusoidal ease-out.
func OutSine(p float64) float64 { return math.Sin(p * math.Pi / 2) }

// InOutSine is the sinusoidal ease-in-out.
func InOutSine(p float64) float64 { return -0.5 * (math.Cos(math.Pi*p) - 1) }

// -------------------------------------------------------------------
// Exponential
// -------------------------------------------------------------------

// InExpo is the exponential ease-in.
func InExpo(p float64) float64 {
	if p == 0 {
		return 0
	}
	return math.Pow(2, 10*(p-1))
}

// OutExpo is the exponential ease-out.
func OutExpo(p float64) float64 {
	if p == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*p)
}

// InOutExpo is the exponential ease-in-out.
func InOutExpo(p float64) float64 {
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	p *= 2
	if p < 1 {
		return 0.5 * math.Pow(2, 10*(p-1))
	}
	p--
	return 0.5 * (2 - math.Pow(2, -10*p))
}

// -------------------------------------------------------------------
// Circular
// -------------------------------------------------------------------

// InCirc is the circular ease-in.
func InCirc(p float64) float64 { return 1 - math.Sqrt(1-p*p) }

// OutCirc is the circular ease-out.
func OutCirc(p float64) float64 {
	p--
	return math.Sqrt(1 - p*p)
}

// InOutCirc is the circular ease-in-out.
func InOutCirc(p float64) float64 {
	p *= 2
	if p < 1 {
		return -0.5 * (math.Sqrt(1-p*p) - 1)
	}
	p -= 2
	return 0.5 * (math.Sqrt(1-p*p) + 1)
}

// -------------------------------------------------------------------
// Elastic
// -------------------------------------------------------------------

const elasticPeriod = 0.3

// InElastic is the elastic ease-in.
func InElastic(p float64) float64 {
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	s := elasticPeriod / 4
	p--
	return -(math.Pow(2, 10*p) * math.Sin((p-s)*2*math.Pi/elasticPeriod))
}

// OutElastic is the elastic ease-out.
func OutElastic(p float64) float64 {
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	s := elasticPeriod / 4
	return math.Pow(2, -10*p)*math.Sin((p-s)*2*math.Pi/elasticPeriod) + 1
}

// InOutElastic is the elastic ease-in-out.
func InOutElastic(p float64) float64 {
	if p == 0 {
		return 0
	}
	period := elasticPeriod * 1.5
	s := period / 4
	q := p * 2
	if q == 2 {
		return 1
	}
	if q < 1 {
		q--
		return -0.5 * (math.Pow(2, 10*q) * math.Sin((q-s)*2*math.Pi/period))
	}
	q--
	return math.Pow(2, -10*q)*math.Sin((q-s)*2*math.Pi/period)*0.5 + 1
}

// -------------------------------------------------------------------
// Back
// -------------------------------------------------------------------

const backOvershoot = 1.70158

// InBack is the overshooting ease-in.
func InBack(p float64) float64 {
	if p == 1 {
		return 1
	}
	return p * p * ((backOvershoot+1)*p - backOvershoot)
}

// OutBack is the overshooting ease-out.
func OutBack(p float64) float64 {
	if p == 0 {
		return 0
	}
	p--
	return p*p*((backOvershoot+1)*p+backOvershoot) + 1
}

// InOutBack is the overshooting ease-in-out.
func InOutBack(p float64) float64 {
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	s := backOvershoot * 1.525
	p *= 2
	if p < 1 {
		return 0.5 * (p * p * ((s+1)*p - s))
	}
	p -= 2
	return 0.5 * (p*p*((s+1)*p+s) + 2)
}

// -------------------------------------------------------------------
// Bounce
// -------------------------------------------------------------------

func outBounceInternal(t, d float64) float64 {
	p := t / d
	if p == 1 {
		return 1
	}
	switch {
	case p < 1/2.75:
		return 7.5625 * p * p
	case p < 2/2.75:
		p -= 1.5 / 2.75
		return 7.5625*p*p + 0.75
	case p < 2.5/2.75:
		p -= 2.25 / 2.75
		return 7.5625*p*p + 0.9375
	default:
		p -= 2.625 / 2.75
		return 7.5625*p*p + 0.984375
	}
}

func inBounceInternal(t, d float64) float64 {
	return 1 - outBounceInternal(d-t, d)
}

// InBounce is the bouncing ease-in.
func InBounce(p float64) float64 { return inBounceInternal(p, 1) }

// OutBounce is the bouncing ease-out.
func OutBounce(p float64) float64 { return outBounceInternal(p, 1) }

// InOutBounce is the bouncing ease-in-out.
func InOutBounce(p float64) float64 {
	p *= 2
	if p < 1 {
		return inBounceInternal(p, 1) * 0.5
	}
	return outBounceInternal(p-1, 1)*0.5 + 0.5
}
