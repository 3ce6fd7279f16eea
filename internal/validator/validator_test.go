package validator

import (
	"testing"

	"github.com/valpere/medtran/internal"
)

func TestIsValid_EmptyTranslation(t *testing.T) {
	v := New()

	valid, err := v.IsValid("", internal.ToFrench)
	if err == nil {
		t.Error("expected error for empty translation")
	}
	if valid {
		t.Error("expected valid=false for empty translation")
	}
}

func TestIsValid_WhitespaceOnlyTranslation(t *testing.T) {
	v := New()

	valid, err := v.IsValid("   ", internal.ToFrench)
	if err == nil {
		t.Error("expected error for whitespace-only translation")
	}
	if valid {
		t.Error("expected valid=false for whitespace-only translation")
	}
}

func TestIsValid_ShortText(t *testing.T) {
	v := New()

	shortText := "Oui" // below minValidationLength
	valid, err := v.IsValid(shortText, internal.ToFrench)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true for short text (below threshold)")
	}
}

func TestIsValid_FrenchOutputForFrenchDirection(t *testing.T) {
	v := New()

	text := "Le patient a été admis avec des douleurs thoraciques hier soir."
	valid, err := v.IsValid(text, internal.ToFrench)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true when detecting French as French")
	}
}

func TestIsValid_EnglishOutputForEnglishDirection(t *testing.T) {
	v := New()

	text := "The patient was admitted with chest pain late last night."
	valid, err := v.IsValid(text, internal.ToEnglish)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true when detecting English as English")
	}
}

func TestIsValid_MismatchedLanguage(t *testing.T) {
	v := New()

	englishText := "The patient was admitted with chest pain late last night."
	valid, err := v.IsValid(englishText, internal.ToFrench)
	if err == nil {
		t.Error("expected error for mismatched language")
	}
	if valid {
		t.Error("expected valid=false when detecting English but expecting French")
	}
}
