// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import (
	"testing"

	"github.com/bytedance/gopkg/lang/fastrand"
	"github.com/stretchr/testify/require"
)

// liveAlloc tracks one outstanding allocation during a randomized trace:
// its address, its requested size, and the byte pattern the trace wrote
// into it, so the trace can re-verify payload preservation.
type liveAlloc struct {
	addr Addr
	size int
	tag  byte
}

// runTrace drives nOps random malloc/free/realloc calls against a fresh
// Heap, the same style of exercise dbm/crash's scripted corruption runs
// but generated instead of scripted. It verifies heap consistency after
// every single step, the payload of a realloc'd block at the step that
// moved it, and the payload of every still-live block at the end.
func runTrace(t *testing.T, nOps int) {
	t.Helper()

	h := newTestHeap(t, 0)
	var live []liveAlloc

	for i := 0; i < nOps; i++ {
		switch op := fastrand.Intn(3); {
		case op == 0 || len(live) == 0:
			size := 1 + fastrand.Intn(4096)
			p, err := h.Malloc(size)
			require.NoError(t, err)
			if p == NoAddr {
				continue
			}

			tag := byte(fastrand.Intn(256))
			buf := make([]byte, size)
			for j := range buf {
				buf[j] = tag
			}
			h.arena.WriteBytes(p, buf)
			live = append(live, liveAlloc{addr: p, size: size, tag: tag})

		case op == 1:
			idx := fastrand.Intn(len(live))
			a := live[idx]
			require.NoError(t, h.Free(a.addr))
			live = append(live[:idx], live[idx+1:]...)

		default:
			idx := fastrand.Intn(len(live))
			a := live[idx]
			newSize := 1 + fastrand.Intn(4096)

			p, err := h.Realloc(a.addr, newSize)
			require.NoError(t, err)
			require.NotEqual(t, NoAddr, p)

			n := a.size
			if newSize < n {
				n = newSize
			}
			got := h.arena.ReadBytes(p, n)
			for j, b := range got {
				require.Equalf(t, a.tag, b, "byte %d of realloc'd payload at step %d", j, i)
			}

			buf := make([]byte, newSize)
			for j := range buf {
				buf[j] = a.tag
			}
			h.arena.WriteBytes(p, buf)
			live[idx] = liveAlloc{addr: p, size: newSize, tag: a.tag}
		}

		h.mustVerify(t)
	}

	for _, a := range live {
		got := h.arena.ReadBytes(a.addr, a.size)
		for j, b := range got {
			require.Equalf(t, a.tag, b, "byte %d of final payload at %#x", j, a.addr)
		}
	}
}

func TestRandomTraceShort(t *testing.T) {
	runTrace(t, 200)
}

func TestRandomTraceLong(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long randomized trace in -short mode")
	}
	runTrace(t, 5000)
}
