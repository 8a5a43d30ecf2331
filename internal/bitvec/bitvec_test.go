package bitvec

import "testing"

func TestBits(t *testing.T) {
	v := New(20)
	if len(v) != 3 {
		t.Fatalf("New(20) allocated %d bytes, want 3", len(v))
	}
	if v.Len() != 24 {
		t.Fatalf("Len\nhave %d\nwant 24", v.Len())
	}

	v.Set(0)
	if v[0] != 0x80 {
		t.Fatalf("Set(0): byte 0 is %#x, want 0x80", v[0])
	}
	v.Set(7)
	if v[0] != 0x81 {
		t.Fatalf("Set(7): byte 0 is %#x, want 0x81", v[0])
	}
	v.Set(8)
	if v[1] != 0x80 {
		t.Fatalf("Set(8): byte 1 is %#x, want 0x80", v[1])
	}

	for _, i := range []int{0, 7, 8} {
		if !v.IsSet(i) {
			t.Fatalf("IsSet(%d) is false", i)
		}
	}
	if v.IsSet(1) || v.IsSet(9) {
		t.Fatal("unexpected set bit")
	}

	v.Unset(7)
	if v.IsSet(7) || v[0] != 0x80 {
		t.Fatal("Unset(7) left the bit set")
	}

	v.Clear()
	for i := 0; i < v.Len(); i++ {
		if v.IsSet(i) {
			t.Fatalf("Clear left bit %d set", i)
		}
	}
}
