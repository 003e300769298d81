package hash32

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
)

// curated is the compile-time list of domain identifiers this system must
// always be able to resolve, regardless of whether the engine's bulk
// dictionary is available: pin categories, primitive type names, the
// well-known variable class family, and the handful of pin/parameter names
// that appear in nearly every GraphScript file.
var curated = []string{
	// Pin category roles.
	"input_pins",
	"output_pins",
	"variable_pins",

	// Primitive type names.
	"bool",
	"int",
	"uint32",
	"int64",
	"uint64",
	"float",
	"vector",
	"string",
	"string_ptr",
	"enum",

	// Variable-node field names.
	"Name",
	"Value",

	// Well-known variable class family.
	"Variable",
	"ExternalVariable",
	"GlobalVariable",
	"VariableFloat",
	"VariableInt",
	"VariableBool",
	"VariableUint32",
	"VariableUint64",
	"VariableObject",
	"VariableFile",
	"VariableGraphFile",
	"VariableGlobalRef",
	"VariableString",
	"VariableHash",
	"VariableStringHash",
	"VariableVector",
	"VariableTransform",
	"VariableEnum",
	"VariableEventSend",
	"VariableEventReceive",

	// Common pin names seen across node classes.
	"In",
	"Out",
	"done",
	"Condition",
	"True",
	"False",
	"Value1",
	"Value2",
	"Result",
	"Target",
	"Source",
}

// bulkdictionary.txt ships a newline-separated list of additional engine
// identifiers (class names, function names, less common pin names) that a
// real ADF corpus requires to resolve fully. It is intentionally large and
// is loaded after the curated list so curated entries always win any
// collision.
//
//go:embed bulkdictionary.txt
var bulkDictionary string

var initOnce sync.Once

// Init populates the global registry from the curated list followed by the
// embedded bulk dictionary, then (if extra is non-empty) a caller-supplied
// supplemental dictionary — typically loaded from the path named by
// the path key of pkg/config's [dictionary] table. Init is idempotent:
// calling it more than once has no effect after the first call, matching the
// append-only, populate-once-before-any-decode contract that keeps concurrent
// reads (which take the registry's read lock) consistent.
func Init(extra []string) {
	initOnce.Do(func() {
		loadInto(global, curated, bulkDictionary, extra)
	})
}

// Reset rebuilds the global registry from scratch and re-runs Init's
// population logic immediately, atomically rather than incrementally:
// callers that need to pick up a changed supplemental dictionary at
// runtime call Reset instead of mutating the existing registry in place.
func Reset(extra []string) {
	fresh := NewRegistry()
	loadInto(fresh, curated, bulkDictionary, extra)
	global = fresh
}

func loadInto(r *Registry, curatedList []string, bulk string, extra []string) {
	r.RegisterAll(curatedList)

	scanner := bufio.NewScanner(strings.NewReader(bulk))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r.Register(line)
	}

	r.RegisterAll(extra)
}
