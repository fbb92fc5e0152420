package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnDiscover(ctx, "*/*/*/*", 3, nil)
	p.OnParseStart(ctx, "se/rd/serde")
	p.OnParseComplete(ctx, "se/rd/serde", 200, time.Second, nil)
	p.OnParseComplete(ctx, "se/rd/serde", 0, time.Second, errors.New("bad line"))
	p.OnMerge(ctx, 10, 1)
	p.OnEncode(ctx, "json", 1024, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	Pipeline().OnParseStart(context.Background(), "a")
	Pipeline().OnParseStart(context.Background(), "b")
	if custom.starts != 2 {
		t.Errorf("custom hooks saw %d parse starts, want 2", custom.starts)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

type testPipelineHooks struct {
	NoopPipelineHooks
	starts int
}

func (h *testPipelineHooks) OnParseStart(context.Context, string) { h.starts++ }
