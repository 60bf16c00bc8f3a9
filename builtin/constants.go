package builtin

import (
	"math"
	"strings"

	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/value"
)

// registerConstants binds the named mathematical constants. Lookup of
// these particular names is case-insensitive, so the registry binds
// every upper/lower-case spelling of each name.
func registerConstants(env *environment.Environment) {
	constants := map[string]float64{
		"pi":    math.Pi,
		"e":     math.E,
		"phi":   (1 + math.Sqrt(5)) / 2,
		"sqrt2": math.Sqrt2,
		"sqrt3": math.Sqrt(3),
		"ln2":   math.Ln2,
		"ln10":  math.Log(10),
		"tau":   2 * math.Pi,
	}
	for name, v := range constants {
		bindCaseInsensitive(env, name, value.Number(v))
	}
}

func bindCaseInsensitive(env *environment.Environment, name string, v value.Value) {
	spellings := []string{""}
	for _, r := range strings.ToLower(name) {
		lower, upper := string(r), strings.ToUpper(string(r))
		next := make([]string, 0, 2*len(spellings))
		for _, s := range spellings {
			next = append(next, s+lower)
			if upper != lower {
				next = append(next, s+upper)
			}
		}
		spellings = next
	}
	for _, s := range spellings {
		env.Bind(s, v)
	}
}
