package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestRingCapturesSpans(t *testing.T) {
	ring := NewRingTracer(8, LevelDebug)
	span := Begin(ring, ScopePass, "bind", 0)
	Point(ring, ScopeNode, "stmt", span.ID(), "let x")
	span.WithExtra("stmts", "1").End("ok")

	events := ring.Snapshot()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Kind != KindSpanBegin || events[2].Kind != KindSpanEnd {
		t.Fatalf("unexpected kinds: %v %v", events[0].Kind, events[2].Kind)
	}
	if events[1].ParentID != span.ID() {
		t.Fatalf("point must be parented to the span")
	}
	if events[2].Extra["stmts"] != "1" || events[2].Detail != "ok" {
		t.Fatalf("end event lost detail: %+v", events[2])
	}
	for i := 1; i < len(events); i++ {
		if events[i].Seq <= events[i-1].Seq {
			t.Fatalf("sequence numbers must increase")
		}
	}
}

func TestRingWraps(t *testing.T) {
	ring := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(ring, ScopeDriver, name, 0, "")
	}
	events := ring.Snapshot()
	if len(events) != 2 || events[0].Name != "b" || events[1].Name != "c" {
		t.Fatalf("unexpected snapshot: %+v", events)
	}
}

func TestLevelFiltering(t *testing.T) {
	ring := NewRingTracer(16, LevelPhase)
	Begin(ring, ScopePass, "parse", 0).End("")
	Begin(ring, ScopeInput, "input", 0).End("")
	Point(ring, ScopeNode, "node", 0, "")
	if got := len(ring.Snapshot()); got != 2 {
		t.Fatalf("phase level must keep only pass events, got %d", got)
	}

	errRing := NewRingTracer(16, LevelError)
	Begin(errRing, ScopePass, "bind", 0).End("")
	Begin(errRing, ScopePass, "bind", 0).WithExtra("error", "SEM3001").End("failed")
	events := errRing.Snapshot()
	if len(events) != 1 || events[0].Detail != "failed" {
		t.Fatalf("error level must keep failed spans only, got %+v", events)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"off": LevelOff, "PHASE": LevelPhase, "debug": LevelDebug} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestStreamFormats(t *testing.T) {
	var text bytes.Buffer
	st := NewStreamTracer(&text, LevelDebug, FormatText)
	Begin(st, ScopePass, "generate", 0).WithExtra("b", "2").WithExtra("a", "1").End("done")
	out := text.String()
	if !strings.Contains(out, "→ generate") || !strings.Contains(out, "(done) {a=1, b=2}") {
		t.Fatalf("unexpected text output:\n%s", out)
	}

	var nd bytes.Buffer
	js := NewStreamTracer(&nd, LevelDebug, FormatNDJSON)
	Point(js, ScopeDriver, "repl", 0, "start")
	var decoded map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(nd.Bytes()), &decoded); err != nil {
		t.Fatalf("invalid ndjson: %v", err)
	}
	if decoded["name"] != "repl" || decoded["kind"] != "point" || decoded["scope"] != "driver" {
		t.Fatalf("unexpected event %v", decoded)
	}
}

func TestContextPropagation(t *testing.T) {
	ring := NewRingTracer(4, LevelDebug)
	ctx := WithTracer(context.Background(), ring)
	if FromContext(ctx) != Tracer(ring) {
		t.Fatalf("tracer not propagated")
	}
	if FromContext(context.Background()) != Nop {
		t.Fatalf("missing tracer must be Nop")
	}
	span := Begin(ring, ScopeDriver, "session", 0)
	ctx = WithSpan(ctx, span)
	if ParentID(ctx) != span.ID() {
		t.Fatalf("parent id not propagated")
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off config must yield a disabled tracer")
	}
	span := Begin(tr, ScopePass, "x", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatalf("inert span expected")
	}
}

func TestMultiFansOut(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDebug, Mode: ModeBoth, Output: &buf, Format: FormatText})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Point(tr, ScopeDriver, "hello", 0, "")
	multi, ok := tr.(*MultiTracer)
	if !ok {
		t.Fatalf("expected MultiTracer, got %T", tr)
	}
	if len(multi.Ring().Snapshot()) != 1 || !strings.Contains(buf.String(), "hello") {
		t.Fatalf("event must reach both children")
	}
}
