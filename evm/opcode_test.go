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

import "testing"

func TestOpCode_String_NamesKnownAndUnknownOpcodes(t *testing.T) {
	if got := ADD.String(); got != "ADD" {
		t.Errorf("expected ADD, got %q", got)
	}
	if got := PUSH1.String(); got != "PUSH1" {
		t.Errorf("expected PUSH1, got %q", got)
	}
	if got := PUSH32.String(); got != "PUSH32" {
		t.Errorf("expected PUSH32, got %q", got)
	}
	if got := DUP16.String(); got != "DUP16" {
		t.Errorf("expected DUP16, got %q", got)
	}
	if got := SWAP16.String(); got != "SWAP16" {
		t.Errorf("expected SWAP16, got %q", got)
	}
	if got := OpCode(0x0c).String(); got != "UNKNOWN(0x0c)" {
		t.Errorf("expected UNKNOWN(0x0c), got %q", got)
	}
}

func TestOpCode_IsPush_CoversPush0ThroughPush32Only(t *testing.T) {
	if !PUSH0.IsPush() {
		t.Errorf("expected PUSH0 to be a push opcode")
	}
	if !PUSH32.IsPush() {
		t.Errorf("expected PUSH32 to be a push opcode")
	}
	if ADD.IsPush() {
		t.Errorf("expected ADD to not be a push opcode")
	}
}

func TestOpCode_PushSize_ReturnsImmediateByteCount(t *testing.T) {
	tests := map[OpCode]int{
		PUSH0:  0,
		PUSH1:  1,
		PUSH4:  4,
		PUSH32: 32,
		ADD:    0,
	}
	for op, want := range tests {
		if got := op.PushSize(); got != want {
			t.Errorf("%v.PushSize() = %d, want %d", op, got, want)
		}
	}
}

func TestOpCodePropertyMap_LooksUpPrecomputedPropertyForEveryByteValue(t *testing.T) {
	m := newOpCodePropertyMap(func(op OpCode) int { return int(op) * 2 })
	for i := 0; i < numOpCodes; i++ {
		if want, got := i*2, m.get(OpCode(i)); want != got {
			t.Errorf("opcode 0x%02x: want %d, got %d", i, want, got)
		}
	}
}
