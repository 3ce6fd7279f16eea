// Package lexicon defines the fixed medical abbreviation tables applied
// around machine translation. The English→French table is authoritative;
// the reverse table is derived by swapping each pair. Order is preserved
// on both sides so substitution stays deterministic.
package lexicon

import "github.com/valpere/medtran/internal"

// Entry maps a term in the direction's source language to its equivalent
// in the target language.
type Entry struct {
	SourceTerm string
	TargetTerm string
}

var enToFr = []Entry{
	{"BP", "TA"},   // blood pressure
	{"HR", "FC"},   // heart rate
	{"ECG", "ECG"}, // same abbreviation in French
	{"CT scan", "Tomodensitogrammes"},
	{"CPR", "RCR"},
	{"DVT", "TVP"},
	{"GERD", "RGO"},
	{"TKA", "PTG"},
	{"MRI", "IRM"}, // magnetic resonance imaging
	{"IV", "IV"},   // same abbreviation in French
	{"CBC", "NFS"}, // complete blood count
	{"WBC", "GB"},  // white blood cells
	{"RBC", "GR"},  // red blood cells
	{"UTI", "ITU"}, // urinary tract infection
	{"COPD", "BPCO"},
	{"CHF", "IC"}, // congestive heart failure
}

var frToEn = invert(enToFr)

func invert(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{SourceTerm: e.TargetTerm, TargetTerm: e.SourceTerm}
	}
	return out
}

// Entries returns the substitution table whose source side matches the
// direction's source language, in definition order. The slice is shared;
// callers must not modify it.
func Entries(d internal.Direction) []Entry {
	if d == internal.ToFrench {
		return enToFr
	}
	return frToEn
}
