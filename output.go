package convertirse

import "strings"

// ParseOutput splits raw model output into the fenced code block and the
// trailing prose summary. Parsing is tolerant: if no fenced block is found
// the whole output is treated as code and the summary is empty. The raw
// output is what the cache stores; this only shapes it for display.
func ParseOutput(raw string) (code string, summary string) {
	lines := strings.Split(raw, "\n")

	start := -1
	end := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if start == -1 {
				start = i
			} else {
				end = i
				break
			}
		}
	}

	if start == -1 || end == -1 {
		return strings.TrimSpace(raw), ""
	}

	code = strings.Join(lines[start+1:end], "\n")
	summary = strings.TrimSpace(strings.Join(lines[end+1:], "\n"))
	return code, summary
}
