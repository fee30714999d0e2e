package convertirse

import "testing"

func TestIsSupported(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"Python", true},
		{"python", true},
		{"GO", true},
		{"  TypeScript ", true},
		{"C++", true},
		{"COBOL", false},
		{"Fortran", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := IsSupported(tt.lang); got != tt.want {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.lang, got, tt.want)
			}
		})
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"python", "Python"},
		{"PYTHON", "Python"},
		{"c++", "C++"},
		{"typescript", "TypeScript"},
		{" go ", "Go"},
		{"php", "PHP"},
		{"COBOL", "COBOL"}, // unknown names pass through trimmed
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLanguage(tt.input); got != tt.want {
				t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFenceName(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"C++", "cpp"},
		{"Python", "python"},
		{"javascript", "javascript"},
		{"Go", "go"},
		{"COBOL", "cobol"}, // fallback: lowercased
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := FenceName(tt.lang); got != tt.want {
				t.Errorf("FenceName(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"Python", ".py"},
		{"rust", ".rs"},
		{"C++", ".cpp"},
		{"COBOL", ""},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := FileExtension(tt.lang); got != tt.want {
				t.Errorf("FileExtension(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestSupportedLanguagesAllCanonical(t *testing.T) {
	for _, lang := range SupportedLanguages {
		if !IsSupported(lang) {
			t.Errorf("%q listed but not supported", lang)
		}
		if NormalizeLanguage(lang) != lang {
			t.Errorf("%q is not its own canonical form", lang)
		}
		if FenceName(lang) == "" {
			t.Errorf("%q has no fence name", lang)
		}
		if FileExtension(lang) == "" {
			t.Errorf("%q has no file extension", lang)
		}
	}
}
