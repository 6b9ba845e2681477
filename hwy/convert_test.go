package hwy

import (
	"math"
	"testing"
)

func TestBitCastWidensLanes(t *testing.T) {
	if !IsLittleEndian() {
		t.Skip("lane order depends on host byte order")
	}
	v := Iota[int64]()
	u := BitCast[uint32](v)

	if u.NumLanes() != 2*v.NumLanes() {
		t.Fatalf("BitCast: got %d lanes, want %d", u.NumLanes(), 2*v.NumLanes())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if u.data[2*i] != uint32(i) || u.data[2*i+1] != 0 {
			t.Errorf("BitCast: lanes %d,%d: got %d,%d, want %d,0", 2*i, 2*i+1, u.data[2*i], u.data[2*i+1], i)
		}
	}
}

func TestBitCastF32ToU32(t *testing.T) {
	v := Set[float32](1.5)
	u := BitCast[uint32](v)
	want := math.Float32bits(1.5)
	for i := 0; i < u.NumLanes(); i++ {
		if u.data[i] != want {
			t.Errorf("BitCast: lane %d: got %#x, want %#x", i, u.data[i], want)
		}
	}
}

func TestBitCastRoundTrip(t *testing.T) {
	v := Load([]float64{math.Pi, -0.0, math.Inf(1), 1e-300})
	back := BitCast[float64](BitCast[uint8](v))
	for i := 0; i < v.NumLanes(); i++ {
		if math.Float64bits(back.data[i]) != math.Float64bits(v.data[i]) {
			t.Errorf("BitCast round trip: lane %d: got %v, want %v", i, back.data[i], v.data[i])
		}
	}
}

func TestBitCastPreservesBytes(t *testing.T) {
	for _, v := range []Vec[int8]{Zero[int8](), Iota[int8](), Set[int8](-1)} {
		if got := BitCast[int64](v).NumLanes() * 8; got != CurrentWidth() {
			t.Errorf("BitCast[int64]: got %d bytes, want %d", got, CurrentWidth())
		}
	}
}
