package shmring

import (
	"testing"
)

// fakeIO models partial producer progress (accept up to k bytes).
type fakeIO struct{ k int }

func (f fakeIO) write(p []byte) int {
	if len(p) > f.k {
		return f.k
	}
	return len(p)
}

func TestOrderAcrossWrapWithPartialProgress(t *testing.T) {
	r := New(64)
	prod := fakeIO{k: 7}

	const N = 2000
	src := make([]byte, N)
	for i := range src {
		src[i] = byte(i)
	}

	p := src
	dst := make([]byte, N)
	off := 0
	for off < N {
		if len(p) > 0 {
			if step := prod.write(p); step > 0 {
				step = r.WriteFrom(p[:step])
				p = p[step:]
			}
		}
		var tmp [17]byte
		n := r.ReadInto(tmp[:])
		copy(dst[off:], tmp[:n])
		off += n
	}

	for i := 0; i < N; i++ {
		if dst[i] != src[i] {
			t.Fatalf("mismatch at %d: got=%d want=%d", i, dst[i], src[i])
		}
	}
}

func TestWriteFromCountsDrops(t *testing.T) {
	r := New(4)
	if n := r.WriteFrom([]byte{0, 1, 2}); n != 3 {
		t.Fatalf("WriteFrom = %d, want 3", n)
	}
	if n := r.WriteFrom([]byte{3, 4, 5}); n != 1 {
		t.Fatalf("WriteFrom = %d, want 1", n)
	}
	if r.Available() != 4 || r.Dropped() != 2 {
		t.Fatalf("avail=%d dropped=%d", r.Available(), r.Dropped())
	}
	if n := r.WriteFrom([]byte{6}); n != 0 || r.Dropped() != 3 {
		t.Fatalf("full ring: n=%d dropped=%d", n, r.Dropped())
	}

	var one [1]byte
	for want := byte(0); want < 4; want++ {
		if n := r.ReadInto(one[:]); n != 1 || one[0] != want {
			t.Fatalf("ReadInto = %d,%d want %d", n, one[0], want)
		}
	}
	if n := r.ReadInto(one[:]); n != 0 || r.Available() != 0 {
		t.Fatalf("empty ring read %d", n)
	}
}

func TestNewRejectsSize(t *testing.T) {
	for _, n := range []int{0, 1, 3, 12} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", n)
				}
			}()
			New(n)
		}()
	}
}
