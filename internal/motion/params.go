package motion

import "github.com/zclconf/go-cty/cty"

// Graph parameter names. The runtime controller writes these each frame;
// the compiler only declares them and references them from guards and
// blend axes.
const (
	ParamMoving  = "isMoving"
	ParamRunning = "isRunning"
	ParamJump    = "jump"
	ParamAttack  = "attack"
	ParamDuck    = "duck"
	ParamSlide   = "slide"
	ParamMoveX   = "moveX"
	ParamMoveY   = "moveY"
)

// ParamDef declares one graph parameter with its type and default value.
type ParamDef struct {
	Name    string
	Type    cty.Type
	Default cty.Value
}

// params is the closed definition table, in declaration order. Guards may
// only reference names from this table.
var params = []ParamDef{
	{Name: ParamMoving, Type: cty.Bool, Default: cty.False},
	{Name: ParamRunning, Type: cty.Bool, Default: cty.False},
	{Name: ParamJump, Type: cty.Bool, Default: cty.False},
	{Name: ParamAttack, Type: cty.Bool, Default: cty.False},
	{Name: ParamDuck, Type: cty.Bool, Default: cty.False},
	{Name: ParamSlide, Type: cty.Bool, Default: cty.False},
	{Name: ParamMoveX, Type: cty.Number, Default: cty.Zero},
	{Name: ParamMoveY, Type: cty.Number, Default: cty.Zero},
}

// Params returns the parameter definition table in declaration order.
func Params() []ParamDef {
	out := make([]ParamDef, len(params))
	copy(out, params)
	return out
}

// ParamByName looks a parameter definition up by name.
func ParamByName(name string) (ParamDef, bool) {
	for _, p := range params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamDef{}, false
}
