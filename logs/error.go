package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the context span to err so failures can be traced back to log lines.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}

// SpanOf returns the span carried by ctx, or the empty span.
func SpanOf(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
