package hwy

import "unsafe"

// BitCast reinterprets the bytes of v as lanes of type To without any
// numeric conversion. Because every vector occupies CurrentWidth() bytes,
// the result has MaxLanes[To]() lanes:
//
//	BitCast[uint32](Vec[int64]{1, 2})  // [1, 0, 2, 0] on little-endian hosts
//
// Lane order follows the host byte order; all dispatch targets
// (amd64, arm64) are little-endian.
func BitCast[To, From Lanes](v Vec[From]) Vec[To] {
	nbytes := len(v.data) * SizeOf[From]()
	out := make([]To, nbytes/SizeOf[To]())
	if len(out) > 0 {
		dst := unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(out)*SizeOf[To]())
		src := unsafe.Slice((*byte)(unsafe.Pointer(&v.data[0])), nbytes)
		copy(dst, src)
	}
	return Vec[To]{data: out}
}

// IsLittleEndian reports whether the host stores the least significant
// byte of a lane first, which determines the lane order produced by BitCast.
func IsLittleEndian() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}
