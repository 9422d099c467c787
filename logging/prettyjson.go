// Package logging provides the slog handler used by the driver: one pretty
// JSON object per record on stderr. It is meant for reading a bot's logs by
// eye during a match, not for shipping anywhere, and is not optimized for
// throughput.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// Handler is a slog.Handler that renders each record as an indented JSON
// object. Group names are flattened into dotted key prefixes rather than
// nested objects, which keeps grepping the output simple.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler

	prefix string
	attrs  map[string]any
}

// New returns a Handler writing to w at the given minimum level. A nil
// level means slog.LevelInfo.
func New(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
		attrs: map[string]any{},
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	payload := make(map[string]any, len(h.attrs)+4)
	for k, v := range h.attrs {
		payload[k] = v
	}

	when := r.Time
	if when.IsZero() {
		when = time.Now()
	}
	payload["time"] = when.Format(time.RFC3339Nano)
	payload["level"] = r.Level.String()
	payload["msg"] = r.Message

	r.Attrs(func(a slog.Attr) bool {
		flatten(payload, h.prefix, a)
		return true
	})

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		// Never drop a record over an unmarshalable attr.
		b = []byte(`{"level":` + strconv.Quote(r.Level.String()) + `,"msg":` + strconv.Quote(r.Message) + `}`)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(append(b, '\n'))
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	for _, a := range attrs {
		flatten(clone.attrs, clone.prefix, a)
	}
	return clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.prefix = h.prefix + name + "."
	return clone
}

func (h *Handler) clone() *Handler {
	attrs := make(map[string]any, len(h.attrs))
	for k, v := range h.attrs {
		attrs[k] = v
	}
	return &Handler{
		w:      h.w,
		mu:     h.mu,
		level:  h.level,
		prefix: h.prefix,
		attrs:  attrs,
	}
}

// flatten writes attr into dst under prefix, expanding slog groups into
// dotted keys ("conn.peer.addr").
func flatten(dst map[string]any, prefix string, attr slog.Attr) {
	if attr.Key == "" && attr.Value.Resolve().Kind() != slog.KindGroup {
		return
	}
	v := attr.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		p := prefix
		if attr.Key != "" {
			p += attr.Key + "."
		}
		for _, ga := range v.Group() {
			flatten(dst, p, ga)
		}
		return
	}
	dst[prefix+attr.Key] = jsonValue(v)
}

func jsonValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	default:
		return v.Any()
	}
}
