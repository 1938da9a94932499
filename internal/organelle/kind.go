// Package organelle maps free-text organelle labels to procedurally built
// 3D specimen meshes and reference facts.
package organelle

import "strings"

// Kind enumerates the organelles the viewer can synthesize.
type Kind int

const (
	Nucleus Kind = iota
	Mitochondria
	Chloroplast
	Ribosome
	ER
	Golgi
	Lysosome
	Membrane
	Wall
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case Mitochondria:
		return "mitochondria"
	case Chloroplast:
		return "chloroplast"
	case Ribosome:
		return "ribosome"
	case ER:
		return "endoplasmic reticulum"
	case Golgi:
		return "golgi apparatus"
	case Lysosome:
		return "lysosome"
	case Membrane:
		return "cell membrane"
	case Wall:
		return "cell wall"
	default:
		return "nucleus"
	}
}

// keywordTable is the classification priority order: the first keyword
// contained in the input wins.
var keywordTable = []struct {
	keyword string
	kind    Kind
}{
	{"mitochondria", Mitochondria},
	{"chloroplast", Chloroplast},
	{"ribosome", Ribosome},
	{"endoplasmic", ER},
	{"er", ER},
	{"golgi", Golgi},
	{"lysosome", Lysosome},
	{"membrane", Membrane},
	{"wall", Wall},
}

// Classify maps a free-text label to a Kind by case-insensitive substring
// containment, first match in priority order. Unrecognized labels resolve
// to Nucleus; there is no error path.
func Classify(name string) Kind {
	lower := strings.ToLower(name)
	for _, entry := range keywordTable {
		if strings.Contains(lower, entry.keyword) {
			return entry.kind
		}
	}
	return Nucleus
}
