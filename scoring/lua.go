package scoring

import (
	"errors"
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// ScriptFunction is the global a score script must define: points(size) -> number
const ScriptFunction = "points"

// ErrMissingFunction is returned when a script does not define ScriptFunction
var ErrMissingFunction = errors.New("score script does not define " + ScriptFunction)

// LuaRule evaluates points through a Lua script and falls back on any script error
// Single-goroutine access only (host loop)
type LuaRule struct {
	vm       *lua.LState
	fn       lua.LValue
	fallback Rule
	log      *zap.Logger
}

// NewLuaRule loads a script file
func NewLuaRule(path string, fallback Rule, log *zap.Logger) (*LuaRule, error) {
	return newLuaRule(func(vm *lua.LState) error { return vm.DoFile(path) }, path, fallback, log)
}

// NewLuaRuleString loads a script from source text
func NewLuaRuleString(source string, fallback Rule, log *zap.Logger) (*LuaRule, error) {
	return newLuaRule(func(vm *lua.LState) error { return vm.DoString(source) }, "<inline>", fallback, log)
}

func newLuaRule(load func(*lua.LState) error, name string, fallback Rule, log *zap.Logger) (*LuaRule, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	if err := load(vm); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load score script %s: %w", name, err)
	}

	fn := vm.GetGlobal(ScriptFunction)
	if fn.Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("%s: %w", name, ErrMissingFunction)
	}

	log.Debug("loaded score script", zap.String("file", name))
	return &LuaRule{vm: vm, fn: fn, fallback: fallback, log: log}, nil
}

// Points implements Rule
func (r *LuaRule) Points(size float64) int {
	if err := r.vm.CallByParam(lua.P{
		Fn:      r.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(size)); err != nil {
		r.log.Error("lua points error", zap.Error(err))
		return r.fallbackPoints(size)
	}

	result := r.vm.Get(-1)
	r.vm.Pop(1)

	n, ok := result.(lua.LNumber)
	if !ok {
		r.log.Error("lua points returned non-number", zap.String("type", result.Type().String()))
		return r.fallbackPoints(size)
	}
	v := math.Floor(float64(n))
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return int(v)
}

// Close releases the VM
func (r *LuaRule) Close() {
	r.vm.Close()
}

func (r *LuaRule) fallbackPoints(size float64) int {
	if r.fallback == nil {
		return 0
	}
	return r.fallback.Points(size)
}
