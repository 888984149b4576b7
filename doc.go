/*
Package sortby offers stable, lazily evaluated ordering of sequences.

# Sorting

A sort is described by a source sequence and one or more comparators:

	people := sortby.By(slices.Values(staff), compare.By(func(p Person) int { return p.Age })).
		ThenBy(compare.ByKey(func(p Person) string { return p.Name }, compare.Lexical))
	for p := range people.All() {
		…
	}

Nothing happens until the sorted view is iterated. Every iteration builds a
fresh 2-3-4 tree (see package tree234), feeds it the source sequence once and
then walks the tree in order. Items comparing equal under all comparators keep
their relative input order.

Descending order is realized by inverting the comparator before the tree is
constructed, secondary orderings by chaining comparators lexicographically.

# Fan-out

Fanout makes a single pass over a source and sorts it under several
comparators at once, building one independent tree per comparator
concurrently.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) 2020–21, Norbert Pillmayer
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sortby

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	if gtrace.CoreTracer != nil {
		return gtrace.CoreTracer
	}
	return fallbackTracer()
}

var fallbackTracer = sync.OnceValue(func() tracing.Trace {
	tr := gologadapter.New()
	tr.SetTraceLevel(tracing.LevelInfo)
	return tr
})

// SortError is an error type for the sortby module
type SortError string

func (e SortError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SortError("illegal arguments")

// ErrFanoutAborted is flagged when a fan-out sort has been cancelled before
// the source was exhausted.
const ErrFanoutAborted = SortError("fan-out aborted")
