package core

// IsSilent reports whether every sample in buf is within Epsilon of zero.
// It stops at the first audible sample. NaN samples are not silent.
// Pass buf[:n] to test only the first n samples.
func IsSilent(buf []Sample) bool {
	for _, v := range buf {
		if !CloseToZero(v) {
			return false
		}
	}
	return true
}

// ZeroBuffer sets all samples in buf to 0.
func ZeroBuffer(buf []Sample) {
	for i := range buf {
		buf[i] = 0
	}
}

// ZeroInts sets all values in buf to 0.
func ZeroInts(buf []int) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyBuffer copies len(src) samples into the front of dst.
// dst must be at least as long as src. Overlapping buffers are not supported.
func CopyBuffer(dst, src []Sample) {
	copy(dst[:len(src)], src)
}

// CopyBufferF32 is CopyBuffer for single-precision buffers.
func CopyBufferF32(dst, src []float32) {
	copy(dst[:len(src)], src)
}
