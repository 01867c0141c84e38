package scope

// GlobalVariables is the seed table of predeclared names the module scope
// starts with, per spec.md §4.3 "a static list of global variable names
// ... seeds the outermost scope so that top-level code may reference
// environment-provided globals without triggering use-of-undeclared-
// variable". The browser/Node split mirrors quick-lint-js's own
// configuration of ECMAScript + DOM + Node globals; writable vs.
// non-writable follows the same source.
type GlobalVariables struct {
	// Writable holds names usable as both a use and an assignment target
	// without diagnostic (`window = {}` is legal, if unusual).
	Writable map[string]bool
	// NonWritable holds names usable as a use but never as an assignment
	// target (assigning reports AssignmentToConstGlobalVariable).
	NonWritable map[string]bool
}

// DefaultGlobals returns the standard ECMAScript-plus-common-host-API seed
// table. Callers (notably cliconfig) may extend a copy of it with
// project-specific globals.
func DefaultGlobals() *GlobalVariables {
	g := &GlobalVariables{
		Writable:    map[string]bool{},
		NonWritable: map[string]bool{},
	}
	for _, name := range ecmaScriptWritableGlobals {
		g.Writable[name] = true
	}
	for _, name := range ecmaScriptNonWritableGlobals {
		g.NonWritable[name] = true
	}
	return g
}

// Clone returns a deep copy so a loaded config file can extend the default
// set without mutating shared state.
func (g *GlobalVariables) Clone() *GlobalVariables {
	clone := &GlobalVariables{
		Writable:    make(map[string]bool, len(g.Writable)),
		NonWritable: make(map[string]bool, len(g.NonWritable)),
	}
	for k, v := range g.Writable {
		clone.Writable[k] = v
	}
	for k, v := range g.NonWritable {
		clone.NonWritable[k] = v
	}
	return clone
}

// IsDeclared reports whether name is any kind of predeclared global.
func (g *GlobalVariables) IsDeclared(name string) bool {
	return g.Writable[name] || g.NonWritable[name]
}

var ecmaScriptWritableGlobals = []string{
	"globalThis", "console",
	"setTimeout", "clearTimeout", "setInterval", "clearInterval",
	"window", "document", "navigator", "location", "history",
	"process", "require", "module", "exports", "__dirname", "__filename",
	"global", "Buffer",
}

var ecmaScriptNonWritableGlobals = []string{
	"undefined", "NaN", "Infinity",
	"Object", "Array", "Function", "Boolean", "Number", "String", "Symbol",
	"BigInt", "Date", "RegExp", "Error", "TypeError", "RangeError",
	"SyntaxError", "ReferenceError", "EvalError", "URIError",
	"Map", "Set", "WeakMap", "WeakSet", "Promise", "Proxy", "Reflect",
	"JSON", "Math",
	"parseInt", "parseFloat", "isNaN", "isFinite",
	"encodeURIComponent", "decodeURIComponent", "encodeURI", "decodeURI",
}
