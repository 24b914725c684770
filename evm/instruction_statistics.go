// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package evm

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/holiman/uint256"

	"github.com/lumenchain/goevm/vm"
)

// InstructionStatistics is a Tracer that collects counts of individual
// opcodes and of adjacent opcode pairs/triples/quads, usable to profile
// which instruction sequences dominate a workload. It is safe for
// concurrent use by multiple runs sharing the same instance.
type InstructionStatistics struct {
	mutex sync.Mutex
	stats *opStatistics

	last, secondLast, thirdLast uint64
}

// NewInstructionStatistics creates an empty, ready-to-use statistics Tracer.
func NewInstructionStatistics() *InstructionStatistics {
	return &InstructionStatistics{stats: newOpStatistics()}
}

func (s *InstructionStatistics) OnStep(pc int, op OpCode, gas vm.Gas, stackLen int, top *uint256.Int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cur := uint64(op)
	s.stats.count++
	s.stats.singleCount[cur]++
	if s.stats.count == 1 {
		s.last, s.secondLast, s.thirdLast = cur, s.last, s.secondLast
		return
	}
	s.stats.pairCount[s.last<<16|cur]++
	if s.stats.count == 2 {
		s.last, s.secondLast, s.thirdLast = cur, s.last, s.secondLast
		return
	}
	s.stats.tripleCount[s.secondLast<<32|s.last<<16|cur]++
	if s.stats.count == 3 {
		s.last, s.secondLast, s.thirdLast = cur, s.last, s.secondLast
		return
	}
	s.stats.quadCount[s.thirdLast<<48|s.secondLast<<32|s.last<<16|cur]++
	s.last, s.secondLast, s.thirdLast = cur, s.last, s.secondLast
}

// Summary returns a human-readable report of the top 5 most frequent
// singles, pairs, triples and quads observed so far.
func (s *InstructionStatistics) Summary() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.stats.print()
}

// Reset discards all collected statistics.
func (s *InstructionStatistics) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.stats = newOpStatistics()
	s.last, s.secondLast, s.thirdLast = 0, 0, 0
}

// opStatistics is the raw tally backing InstructionStatistics.
type opStatistics struct {
	count       uint64
	singleCount map[uint64]uint64
	pairCount   map[uint64]uint64
	tripleCount map[uint64]uint64
	quadCount   map[uint64]uint64
}

func newOpStatistics() *opStatistics {
	return &opStatistics{
		singleCount: map[uint64]uint64{},
		pairCount:   map[uint64]uint64{},
		tripleCount: map[uint64]uint64{},
		quadCount:   map[uint64]uint64{},
	}
}

func (s *opStatistics) print() string {
	type entry struct {
		value uint64
		count uint64
	}

	getTopN := func(data map[uint64]uint64, n int) []entry {
		list := make([]entry, 0, len(data))
		for k, c := range data {
			list = append(list, entry{k, c})
		}
		sort.Slice(list, func(i, j int) bool { return list[i].count > list[j].count })
		if len(list) < n {
			return list
		}
		return list[0:n]
	}

	builder := strings.Builder{}
	write := func(format string, args ...any) {
		builder.WriteString(fmt.Sprintf(format, args...))
	}

	write("\n----- Instruction Statistics ------\n")
	write("\nSteps: %d\n", s.count)

	write("\nSingles:\n")
	for _, e := range getTopN(s.singleCount, 5) {
		write("\t%-20v: %d (%.2f%%)\n", OpCode(e.value), e.count, float64(e.count*100)/float64(s.count))
	}

	write("\nPairs:\n")
	for _, e := range getTopN(s.pairCount, 5) {
		write("\t%-20v%-20v: %d (%.2f%%)\n", OpCode(e.value>>16), OpCode(e.value), e.count, float64(e.count*100)/float64(s.count))
	}

	write("\nTriples:\n")
	for _, e := range getTopN(s.tripleCount, 5) {
		write("\t%-20v%-20v%-20v: %d (%.2f%%)\n", OpCode(e.value>>32), OpCode(e.value>>16), OpCode(e.value), e.count, float64(e.count*100)/float64(s.count))
	}

	write("\nQuads:\n")
	for _, e := range getTopN(s.quadCount, 5) {
		write("\t%-20v%-20v%-20v%-20v: %d (%.2f%%)\n", OpCode(e.value>>48), OpCode(e.value>>32), OpCode(e.value>>16), OpCode(e.value), e.count, float64(e.count*100)/float64(s.count))
	}
	write("\n")

	return builder.String()
}
