package event

import "testing"

func TestSlotEmptyInvokeIsNoop(t *testing.T) {
	var s Slot[int]
	if s.IsSet() {
		t.Error("zero slot should be empty")
	}
	s.Invoke(1) // must not panic
}

func TestSlotOverwrite(t *testing.T) {
	var s Slot[string]
	var calls []string
	s.Set(func(ev string) { calls = append(calls, "first:"+ev) })
	s.Set(func(ev string) { calls = append(calls, "second:"+ev) })

	s.Invoke("click")

	if len(calls) != 1 || calls[0] != "second:click" {
		t.Errorf("calls = %v, want only the second handler", calls)
	}
}

func TestSlotSetNilClears(t *testing.T) {
	var s Slot[int]
	fired := false
	s.Set(func(int) { fired = true })
	s.Set(nil)
	s.Invoke(0)
	if fired || s.IsSet() {
		t.Error("Set(nil) should empty the slot")
	}
}

func TestSlotReplaceDuringInvoke(t *testing.T) {
	var s Slot[int]
	var seen []int
	s.Set(func(v int) {
		seen = append(seen, v)
		s.Set(func(v int) { seen = append(seen, -v) })
	})

	s.Invoke(1)
	s.Invoke(2)

	if len(seen) != 2 || seen[0] != 1 || seen[1] != -2 {
		t.Errorf("seen = %v, want [1 -2]", seen)
	}
}
