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
	"strings"
	"testing"
)

func TestInstructionStatistics_OnStep_CountsSinglesPairsTriplesQuads(t *testing.T) {
	s := NewInstructionStatistics()
	for _, op := range []OpCode{PUSH1, PUSH1, ADD, STOP} {
		s.OnStep(0, op, 0, 0, nil)
	}

	if want, got := uint64(4), s.stats.count; want != got {
		t.Errorf("expected %d total steps, got %d", want, got)
	}
	if got := s.stats.singleCount[uint64(ADD)]; got != 1 {
		t.Errorf("expected ADD to be counted once, got %d", got)
	}
	if got := s.stats.pairCount[uint64(PUSH1)<<16|uint64(PUSH1)]; got != 1 {
		t.Errorf("expected PUSH1->PUSH1 pair counted once, got %d", got)
	}
	if got := s.stats.tripleCount[uint64(PUSH1)<<32|uint64(PUSH1)<<16|uint64(ADD)]; got != 1 {
		t.Errorf("expected PUSH1->PUSH1->ADD triple counted once, got %d", got)
	}
	if got := s.stats.quadCount[uint64(PUSH1)<<48|uint64(PUSH1)<<32|uint64(ADD)<<16|uint64(STOP)]; got != 1 {
		t.Errorf("expected the full quad counted once, got %d", got)
	}
}

func TestInstructionStatistics_Summary_IncludesTopEntries(t *testing.T) {
	s := NewInstructionStatistics()
	for i := 0; i < 3; i++ {
		s.OnStep(0, ADD, 0, 0, nil)
	}
	s.OnStep(0, STOP, 0, 0, nil)

	summary := s.Summary()
	if !strings.Contains(summary, "ADD") {
		t.Errorf("expected summary to mention ADD, got %q", summary)
	}
	if !strings.Contains(summary, "Steps: 4") {
		t.Errorf("expected summary to report step count, got %q", summary)
	}
}

func TestInstructionStatistics_Reset_ClearsAllCounters(t *testing.T) {
	s := NewInstructionStatistics()
	s.OnStep(0, ADD, 0, 0, nil)
	s.OnStep(0, STOP, 0, 0, nil)

	s.Reset()

	if s.stats.count != 0 {
		t.Errorf("expected count to be reset to 0, got %d", s.stats.count)
	}
	if len(s.stats.singleCount) != 0 {
		t.Errorf("expected singleCount to be cleared")
	}
}

func TestInstructionStatistics_IsSafeForConcurrentUse(t *testing.T) {
	s := NewInstructionStatistics()
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				s.OnStep(0, ADD, 0, 0, nil)
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
	if s.stats.count != 400 {
		t.Errorf("expected 400 steps recorded, got %d", s.stats.count)
	}
}
