package detector

import (
	"testing"

	lingua "github.com/pemistahl/lingua-go"
)

func TestDetect(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		text string
		want lingua.Language
		ok   bool
	}{
		{
			name: "english sentence",
			text: "The patient was admitted with chest pain and elevated blood pressure.",
			want: lingua.English,
			ok:   true,
		},
		{
			name: "french sentence",
			text: "Le patient a été admis avec des douleurs thoraciques et une tension artérielle élevée.",
			want: lingua.French,
			ok:   true,
		},
		{
			name: "empty text",
			text: "",
			want: lingua.Unknown,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Detect(tt.text)
			if ok != tt.ok {
				t.Fatalf("Detect(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectISO(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "english gives EN",
			text: "The doctor ordered a complete blood count for the morning.",
			want: "EN",
			ok:   true,
		},
		{
			name: "french gives FR",
			text: "Le médecin a demandé une numération sanguine complète pour le matin.",
			want: "FR",
			ok:   true,
		},
		{
			name: "empty text",
			text: "",
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.DetectISO(tt.text)
			if ok != tt.ok {
				t.Fatalf("DetectISO(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("DetectISO(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
