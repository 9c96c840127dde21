package earley

import "fmt"

// EngineConfig is a typed settings bag controlling the driver's
// optional behaviors: worklist discipline and instrumentation. It is
// not meant for deployment configuration — there's no file or env
// loader here — just the handful of compile-time-ish knobs the engine
// itself consults, the same shape as a small hand-rolled settings bag.
//
// Each setting lives in exactly one of three typed maps; settingKind
// records which map owns a given path so a caller asking for the
// wrong type, or a path that was never set, fails loudly instead of
// silently returning a zero value.
type EngineConfig struct {
	kind    map[string]settingKind
	bools   map[string]bool
	ints    map[string]int
	strings map[string]string
}

type settingKind int

const (
	kindBool settingKind = iota
	kindInt
	kindString
)

func (k settingKind) String() string {
	switch k {
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindString:
		return "string"
	default:
		return "unset"
	}
}

// DefaultConfig returns a config primed with the values Run uses when
// none is supplied.
func DefaultConfig() *EngineConfig {
	c := &EngineConfig{
		kind:    map[string]settingKind{},
		bools:   map[string]bool{},
		ints:    map[string]int{},
		strings: map[string]string{},
	}
	c.SetString("engine.worklist_order", "lifo")
	c.SetBool("engine.instrument", false)
	return c
}

// claim records that path belongs to kind, panicking if it was
// previously set as a different kind — a setting's type can't change
// underneath a caller once established.
func (c *EngineConfig) claim(path string, kind settingKind) {
	if have, ok := c.kind[path]; ok && have != kind {
		panic(fmt.Sprintf("earley: setting %q is already %s, can't reassign as %s", path, have, kind))
	}
	c.kind[path] = kind
}

func (c *EngineConfig) SetBool(path string, v bool) {
	c.claim(path, kindBool)
	c.bools[path] = v
}

func (c *EngineConfig) SetInt(path string, v int) {
	c.claim(path, kindInt)
	c.ints[path] = v
}

func (c *EngineConfig) SetString(path string, v string) {
	c.claim(path, kindString)
	c.strings[path] = v
}

func (c *EngineConfig) GetBool(path string) bool {
	c.mustBe(path, kindBool)
	return c.bools[path]
}

func (c *EngineConfig) GetInt(path string) int {
	c.mustBe(path, kindInt)
	return c.ints[path]
}

func (c *EngineConfig) GetString(path string) string {
	c.mustBe(path, kindString)
	return c.strings[path]
}

func (c *EngineConfig) mustBe(path string, want settingKind) {
	have, ok := c.kind[path]
	if !ok {
		panic(fmt.Sprintf("earley: setting %q does not exist", path))
	}
	if have != want {
		panic(fmt.Sprintf("earley: setting %q is %s, not %s", path, have, want))
	}
}
