package levels

import "testing"

func TestTableIsValid(t *testing.T) {
	if err := Validate(Table); err != nil {
		t.Fatalf("built-in table invalid: %v", err)
	}
}

func TestForPerfects(t *testing.T) {
	cases := []struct {
		perfects int
		want     int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{29, 2},
		{30, 3},
		{299, 7},
		{300, 8},
		{100000, 8},
	}
	for _, c := range cases {
		got := ForPerfects(c.perfects)
		if got.Level != c.want {
			t.Errorf("ForPerfects(%d) = level %d, want %d", c.perfects, got.Level, c.want)
		}
	}
}

func TestForPerfects_MonotonicallyNonDecreasing(t *testing.T) {
	prev := 0
	for p := 0; p <= 350; p++ {
		l := ForPerfects(p).Level
		if l < prev {
			t.Fatalf("level decreased from %d to %d at %d perfects", prev, l, p)
		}
		prev = l
	}
}

func TestNext(t *testing.T) {
	next, ok := Next(1)
	if !ok || next.Level != 2 {
		t.Errorf("Next(1) = (%v, %v), want level 2", next, ok)
	}
	top := Table[len(Table)-1].Level
	if _, ok := Next(top); ok {
		t.Errorf("Next(%d) should report no next level", top)
	}
}

func TestProgress(t *testing.T) {
	// Level 1 spans 0..10.
	if p := Progress(5); p != 0.5 {
		t.Errorf("Progress(5) = %f, want 0.5", p)
	}
	if p := Progress(0); p != 0 {
		t.Errorf("Progress(0) = %f, want 0", p)
	}
	if p := Progress(100000); p != 1 {
		t.Errorf("Progress at top level = %f, want 1", p)
	}
}

func TestValidate_Rejections(t *testing.T) {
	bad := []Level{{Level: 1, RequiredPerfects: 5}}
	if err := Validate(bad); err == nil {
		t.Error("expected error for nonzero first threshold")
	}
	flat := []Level{{Level: 1, RequiredPerfects: 0}, {Level: 2, RequiredPerfects: 0}}
	if err := Validate(flat); err == nil {
		t.Error("expected error for non-increasing thresholds")
	}
}
