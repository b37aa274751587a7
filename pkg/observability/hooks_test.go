package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopStackHooks{}
	s.OnToggle(ctx, true)
	s.OnIgnoredTap(ctx, 3)
	s.OnSettle(ctx, true, 55, time.Second)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, []string{"svg"}, 0.5)
	r.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Stack().(NoopStackHooks); !ok {
		t.Error("Stack() should return NoopStackHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	customStack := &testStackHooks{}
	SetStackHooks(customStack)
	if Stack() != customStack {
		t.Error("SetStackHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	Reset()
	if _, ok := Stack().(NoopStackHooks); !ok {
		t.Error("Reset() should restore NoopStackHooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testStackHooks{}
	SetStackHooks(custom)

	SetStackHooks(nil)
	if Stack() != custom {
		t.Error("SetStackHooks(nil) should be ignored")
	}

	Reset()
}

type testStackHooks struct{ NoopStackHooks }
type testRenderHooks struct{ NoopRenderHooks }
