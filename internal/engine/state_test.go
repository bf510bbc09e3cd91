package engine

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "Idle"},
		{StatePreparing, "Preparing"},
		{StateBuffering, "Buffering"},
		{StateReady, "Ready"},
		{StateEnded, "Ended"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestTimeSentinels_DistinctFromZero(t *testing.T) {
	if UnknownTime == 0 || UnsetTimeUs == 0 || EndOfSourceUs == 0 {
		t.Fatal("time sentinels must be distinct from zero")
	}
	if UnsetTimeUs == EndOfSourceUs {
		t.Fatal("UnsetTimeUs and EndOfSourceUs must differ")
	}
}
