package tools

import "strings"

// BatchResult accumulates per-item outcomes of a batch operation. Partial
// success always renders a result; per-item failures are reported in the text
// body instead of failing the tool call.
type BatchResult struct {
	Successes []string
	Failures  []string
}

// Success records a per-item success line.
func (r *BatchResult) Success(line string) {
	r.Successes = append(r.Successes, line)
}

// Failure records a labeled per-item failure line.
func (r *BatchResult) Failure(line string) {
	r.Failures = append(r.Failures, line)
}

// Render concatenates all success lines, followed by an "Errors encountered"
// section when any item failed.
func (r *BatchResult) Render() string {
	var b strings.Builder
	for _, line := range r.Successes {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(r.Failures) > 0 {
		if len(r.Successes) > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Errors encountered:\n")
		for _, line := range r.Failures {
			b.WriteString("- ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
