package convertirse

import "strings"

// SupportedLanguages is the fixed set of languages accepted as both the
// source and target of a conversion. The set is configuration data and may
// be extended without changing the engine.
var SupportedLanguages = []string{
	"Python",
	"JavaScript",
	"Java",
	"C++",
	"Ruby",
	"Go",
	"Rust",
	"TypeScript",
	"PHP",
	"Swift",
}

// canonicalNames maps lowercased language names to their canonical form.
var canonicalNames = map[string]string{
	"python":     "Python",
	"javascript": "JavaScript",
	"java":       "Java",
	"c++":        "C++",
	"ruby":       "Ruby",
	"go":         "Go",
	"rust":       "Rust",
	"typescript": "TypeScript",
	"php":        "PHP",
	"swift":      "Swift",
}

// fenceNames maps canonical language names to markdown code fence tags.
var fenceNames = map[string]string{
	"Python":     "python",
	"JavaScript": "javascript",
	"Java":       "java",
	"C++":        "cpp",
	"Ruby":       "ruby",
	"Go":         "go",
	"Rust":       "rust",
	"TypeScript": "typescript",
	"PHP":        "php",
	"Swift":      "swift",
}

// fileExtensions maps canonical language names to source file extensions.
var fileExtensions = map[string]string{
	"Python":     ".py",
	"JavaScript": ".js",
	"Java":       ".java",
	"C++":        ".cpp",
	"Ruby":       ".rb",
	"Go":         ".go",
	"Rust":       ".rs",
	"TypeScript": ".ts",
	"PHP":        ".php",
	"Swift":      ".swift",
}

// NormalizeLanguage returns the canonical form of a language name,
// matching case-insensitively (e.g., "python" → "Python").
// Unknown names are returned trimmed but otherwise unchanged.
func NormalizeLanguage(lang string) string {
	trimmed := strings.TrimSpace(lang)
	if canonical, ok := canonicalNames[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// IsSupported reports whether a language is in the supported set.
// Matching is case-insensitive.
func IsSupported(lang string) bool {
	_, ok := canonicalNames[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// FenceName returns the markdown code fence tag for a language
// (e.g., "C++" → "cpp"). Falls back to the lowercased name.
func FenceName(lang string) string {
	if fence, ok := fenceNames[NormalizeLanguage(lang)]; ok {
		return fence
	}
	return strings.ToLower(strings.TrimSpace(lang))
}

// FileExtension returns the conventional source file extension for a
// language (e.g., "Rust" → ".rs"). Returns an empty string for unknown
// languages.
func FileExtension(lang string) string {
	return fileExtensions[NormalizeLanguage(lang)]
}
