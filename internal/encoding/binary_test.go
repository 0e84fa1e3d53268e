package encoding

import "testing"

func TestSplitMerge(t *testing.T) {
	hi, lo := Split16(Merge8(0xab, 0x12))
	if hi != 0xab || lo != 0x12 {
		t.Errorf("Split16(Merge8()) = %x, %x, want ab, 12", hi, lo)
	}
}

func TestBytes8(t *testing.T) {
	if got := FromBytes8(ToBytes8(0x5a)); got != 0x5a {
		t.Errorf("FromBytes8(ToBytes8(0x5a)) = %x", got)
	}
	if got := FromBytes8(nil); got != 0 {
		t.Errorf("FromBytes8(nil) = %x, want 0", got)
	}
}

func TestID(t *testing.T) {
	tests := []struct {
		id   int
		want int
	}{
		{-1, -1},
		{0, 0},
		{41, 41},
	}
	for _, tt := range tests {
		if got := FromID(ToID(tt.id)); got != tt.want {
			t.Errorf("FromID(ToID(%d)) = %d, want %d", tt.id, got, tt.want)
		}
	}
}
