/*
Package seq implements an immutable persistent sequence.

A sequence holds a finite ordered run of elements and supports pushing and
popping at both ends in amortized constant time, as well as indexing,
splitting and concatenation in logarithmic time. Under the hood it is a 2-3
finger tree: short digits of 1…4 entries at both ends of a recursive spine,
with interior 2-3 nodes annotated by a cached element count (the size
measure). Every search for a position walks cached sizes top-down instead of
counting elements.

An immutable persistent sequence has copy-on-write behaviour: Each
“modification” of the sequence creates a copy, leaving the original
unmodified. Copy-on-write retains most of the memory held by the original and
creates new nodes only along the touched root-to-end path. Thus, most of the
structure/memory is shared between original and copy, transparently to
clients.

Immutable sequences are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fseq.seq'.
func tracer() tracing.Trace {
	return tracing.Select("fseq.seq")
}
