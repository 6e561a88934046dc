package ease

var byName = map[string]Func{
	"linear":         Linear,
	"in_quad":        InQuad,
	"out_quad":       OutQuad,
	"in_out_quad":    InOutQuad,
	"in_cubic":       InCubic,
	"out_cubic":      OutCubic,
	"in_out_cubic":   InOutCubic,
	"in_quart":       InQuart,
	"out_quart":      OutQuart,
	"in_out_quart":   InOutQuart,
	"in_quint":       InQuint,
	"out_quint":      OutQuint,
	"in_out_quint":   InOutQuint,
	"in_sine":        InSine,
	"out_sine":       OutSine,
	"in_out_sine":    InOutSine,
	"in_expo":        InExpo,
	"out_expo":       OutExpo,
	"in_out_expo":    InOutExpo,
	"in_circ":        InCirc,
	"out_circ":       OutCirc,
	"in_out_circ":    InOutCirc,
	"in_elastic":     InElastic,
	"out_elastic":    OutElastic,
	"in_out_elastic": InOutElastic,
	"in_back":        InBack,
	"out_back":       OutBack,
	"in_out_back":    InOutBack,
	"in_bounce":      InBounce,
	"out_bounce":     OutBounce,
	"in_out_bounce":  InOutBounce,
}

// ByName returns the transition registered under name. Unrecognized names
// return Linear; lookup never fails.
func ByName(name string) Func {
	if f, ok := byName[name]; ok {
		return f
	}
	return Linear
}

// Names returns the registered transition names.
func Names() []string {
	out := make([]string, 0, len(byName))
	for name := range byName {
		out = append(out, name)
	}
	return out
}
