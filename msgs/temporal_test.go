package msgs

import (
	"testing"
)

func TestNormalizeTemporal(t *testing.T) {
	var tests = []struct {
		sec      int64
		nsec     int64
		wantSec  uint32
		wantNSec uint32
	}{
		{0, 0, 0, 0},
		{1, 500000000, 1, 500000000},
		{1, 1500000000, 2, 500000000},
		{2, -500000000, 1, 500000000},
		{0, 3000000001, 3, 1},
	}
	for _, test := range tests {
		sec, nsec := normalizeTemporal(test.sec, test.nsec)
		if sec != test.wantSec || nsec != test.wantNSec {
			t.Errorf("normalizeTemporal(%d, %d) = (%d, %d), want (%d, %d)",
				test.sec, test.nsec, sec, nsec, test.wantSec, test.wantNSec)
		}
	}
}

func TestTimeArithmetic(t *testing.T) {
	a := NewTime(10, 500000000)
	b := NewTime(12, 250000000)

	d := b.Diff(a)
	if d.Sec != 1 || d.NSec != 750000000 {
		t.Errorf("Diff = {%d %d}", d.Sec, d.NSec)
	}

	c := a.Add(d)
	if c.Cmp(b) != 0 {
		t.Errorf("Add(Diff) should round-trip, got {%d %d}", c.Sec, c.NSec)
	}

	back := b.Sub(d)
	if back.Cmp(a) != 0 {
		t.Errorf("Sub should invert Add, got {%d %d}", back.Sec, back.NSec)
	}

	if a.Cmp(b) != -1 || b.Cmp(a) != 1 {
		t.Error("Cmp ordering wrong")
	}
}

func TestDurationArithmetic(t *testing.T) {
	a := NewDuration(1, 800000000)
	b := NewDuration(0, 400000000)

	sum := a.Add(b)
	if sum.Sec != 2 || sum.NSec != 200000000 {
		t.Errorf("Add = {%d %d}", sum.Sec, sum.NSec)
	}

	diff := a.Sub(b)
	if diff.Sec != 1 || diff.NSec != 400000000 {
		t.Errorf("Sub = {%d %d}", diff.Sec, diff.NSec)
	}

	if !new(Duration).IsZero() {
		t.Error("zero duration should report IsZero")
	}
}

func TestTemporalConversions(t *testing.T) {
	tm := NewTime(2, 500000000)
	if tm.ToSec() != 2.5 {
		t.Errorf("ToSec = %v", tm.ToSec())
	}
	if tm.ToNSec() != 2500000000 {
		t.Errorf("ToNSec = %v", tm.ToNSec())
	}

	var d Duration
	d.FromSec(1.25)
	if d.Sec != 1 || d.NSec != 250000000 {
		t.Errorf("FromSec = {%d %d}", d.Sec, d.NSec)
	}
}
