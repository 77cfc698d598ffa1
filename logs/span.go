package logs

// Span names one unit of work, typically one program run.
type Span string

type spanKey struct{}

var SpanKey spanKey
