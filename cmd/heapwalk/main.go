// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Heapwalk drives a scripted sequence of malloc/free/realloc calls
// against a real malloc.Heap and prints the resulting block layout.
// It exists for manual exploration the same way dbm/crash exists for
// manual DB-crash exploration - there is no scripted assertion here,
// just a verbose CheckHeap dump once the whole script has run.
package main

import (
	"flag"
	"log"
	"strconv"
	"strings"

	"github.com/cznic/malloc"
)

var (
	oScript = flag.String("script", "m:64 m:64 f:0 m:4000", "space separated ops: m:<size>, f:<index>, r:<index>:<size>")
	oMax    = flag.Int("max", 0, "arena byte ceiling, 0 for unbounded")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	arena := malloc.NewMemArena(*oMax)
	h, err := malloc.NewHeap(arena, malloc.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}

	if err := h.Init(); err != nil {
		log.Fatal(err)
	}

	var live []malloc.Addr
	for _, tok := range strings.Fields(*oScript) {
		parts := strings.Split(tok, ":")
		switch parts[0] {
		case "m":
			size, err := strconv.Atoi(parts[1])
			if err != nil {
				log.Fatal(err)
			}

			p, err := h.Malloc(size)
			if err != nil {
				log.Fatal(err)
			}

			log.Printf("malloc(%d) -> %#x", size, p)
			live = append(live, p)
		case "f":
			idx, err := strconv.Atoi(parts[1])
			if err != nil {
				log.Fatal(err)
			}

			if err := h.Free(live[idx]); err != nil {
				log.Fatal(err)
			}

			log.Printf("free(%#x)", live[idx])
		case "r":
			idx, err := strconv.Atoi(parts[1])
			if err != nil {
				log.Fatal(err)
			}

			size, err := strconv.Atoi(parts[2])
			if err != nil {
				log.Fatal(err)
			}

			p, err := h.Realloc(live[idx], size)
			if err != nil {
				log.Fatal(err)
			}

			log.Printf("realloc(%#x, %d) -> %#x", live[idx], size, p)
			live[idx] = p
		default:
			log.Fatalf("unknown op %q", tok)
		}
	}

	h.CheckHeap(true)
}
