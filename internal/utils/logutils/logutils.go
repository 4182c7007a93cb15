package logutils

import "fmt"

// formatPrinter defers formatting of a log field until the field is actually
// rendered. Debug-level instrumentation can attach large payloads without
// paying the fmt cost when debug logging is off.
type formatPrinter struct {
	verb string
	item any
}

func (f formatPrinter) String() string {
	return fmt.Sprintf(f.verb, f.item)
}

// Format wraps item so that it is formatted with the given verb only when
// the log line is emitted.
func Format(verb string, item any) fmt.Stringer {
	return formatPrinter{verb, item}
}
