package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeText denotes free-form values such as the wind name.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single value exposed on the dashboard.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the engine tunables and live readings.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are interpreted based on the parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterProvider exposes a snapshot of the current parameters.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters. It reports whether the key was recognised.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
