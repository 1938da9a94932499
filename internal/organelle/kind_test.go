package organelle

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"Mitochondria", Mitochondria},
		{"bean-shaped MITOCHONDRIA diagram", Mitochondria},
		{"chloroplast", Chloroplast},
		{"Ribosomes", Ribosome},
		{"rough endoplasmic reticulum", ER},
		{"smooth er", ER},
		{"Golgi Apparatus", Golgi},
		{"lysosome vesicle", Lysosome},
		{"cell membrane", Membrane},
		{"cell wall", Wall},
		{"nucleus", Nucleus},
		{"", Nucleus},
		{"unknown structure", Nucleus},
	}
	for _, c := range cases {
		if got := Classify(c.name); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// When multiple keywords appear, the first in table order wins
	cases := []struct {
		name string
		want Kind
	}{
		{"mitochondria and chloroplast", Mitochondria},
		{"chloroplast membrane", Chloroplast},
		{"golgi er", ER},
		{"membrane wall", Membrane},
	}
	for _, c := range cases {
		if got := Classify(c.name); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClassifySubstringEmbedded(t *testing.T) {
	// "er" matches on bare substring containment, consistent with the
	// keyword table ordering
	if got := Classify("transporter"); got != ER {
		t.Errorf("Classify(transporter) = %v, want %v", got, ER)
	}
}

func TestKindString(t *testing.T) {
	if Nucleus.String() != "nucleus" {
		t.Errorf("Nucleus.String() = %q", Nucleus.String())
	}
	if ER.String() != "endoplasmic reticulum" {
		t.Errorf("ER.String() = %q", ER.String())
	}
}

func TestInfoFallsBackToNucleus(t *testing.T) {
	f := Info(Kind(999))
	if f.Name != "Nucleus" {
		t.Errorf("Info(unknown).Name = %q, want Nucleus", f.Name)
	}
}

func TestInfoCoversAllKinds(t *testing.T) {
	kinds := []Kind{Nucleus, Mitochondria, Chloroplast, Ribosome, ER, Golgi, Lysosome, Membrane, Wall}
	for _, k := range kinds {
		f := Info(k)
		if f.Name == "" || f.Function == "" || f.Structure == "" {
			t.Errorf("Info(%v) has empty fields: %+v", k, f)
		}
	}
}
