package convertirse

import "testing"

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantCode    string
		wantSummary string
	}{
		{
			name:        "fenced block with summary",
			raw:         "```go\nfunc Add(a, b int) int {\n\treturn a + b\n}\n```\nConverted to Go.",
			wantCode:    "func Add(a, b int) int {\n\treturn a + b\n}",
			wantSummary: "Converted to Go.",
		},
		{
			name:        "preamble before fence",
			raw:         "Here is the converted code:\n```rust\nfn add(a: i32, b: i32) -> i32 { a + b }\n```\n\nThe function is now Rust.",
			wantCode:    "fn add(a: i32, b: i32) -> i32 { a + b }",
			wantSummary: "The function is now Rust.",
		},
		{
			name:        "no summary",
			raw:         "```python\nprint(1)\n```",
			wantCode:    "print(1)",
			wantSummary: "",
		},
		{
			name:        "no fence at all",
			raw:         "func Add(a, b int) int { return a + b }",
			wantCode:    "func Add(a, b int) int { return a + b }",
			wantSummary: "",
		},
		{
			name:        "unterminated fence",
			raw:         "```go\nfunc Add()",
			wantCode:    "```go\nfunc Add()",
			wantSummary: "",
		},
		{
			name:        "empty output",
			raw:         "",
			wantCode:    "",
			wantSummary: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, summary := ParseOutput(tt.raw)
			if code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
			if summary != tt.wantSummary {
				t.Errorf("summary = %q, want %q", summary, tt.wantSummary)
			}
		})
	}
}
