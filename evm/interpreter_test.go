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
	"math"
	"testing"

	"github.com/holiman/uint256"
	"go.uber.org/mock/gomock"

	"github.com/lumenchain/goevm/vm"
)

func newTestHost(t *testing.T, rev vm.Revision) *vm.MockHost {
	ctrl := gomock.NewController(t)
	host := vm.NewMockHost(ctrl)
	host.EXPECT().GetTransactionContext().Return(vm.TransactionContext{Revision: rev}).AnyTimes()
	return host
}

func TestRun_SimpleAdd_ProducesExpectedResultAndGasLeft(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	code := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 2,
		byte(ADD),
		byte(STOP),
	}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success")
	}
	if want, got := vm.Gas(0), result.GasLeft; want != got {
		t.Errorf("expected gas left %d, got %d", want, got)
	}
}

func TestRun_InsufficientGas_FailsBeforeExecutingInstruction(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	code := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 2,
		byte(ADD),
		byte(STOP),
	}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Errorf("expected out-of-gas failure")
	}
}

func TestRun_MemoryExpansionViaMstore_ReturnsWrittenWord(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	// PUSH1 0x42, PUSH1 0, MSTORE, PUSH1 32, PUSH1 0, RETURN
	code := []byte{
		byte(PUSH1), 0x42,
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success")
	}
	if len(result.Output) != 32 {
		t.Fatalf("expected 32-byte output, got %d bytes", len(result.Output))
	}
	if result.Output[31] != 0x42 {
		t.Errorf("expected last byte 0x42, got 0x%x", result.Output[31])
	}
}

func TestRun_Sdiv_MinInt256DividedByMinusOneWrapsRatherThanPanics(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	// PUSH32 MIN_I256, PUSH32 -1, SDIV, PUSH1 0, MSTORE, PUSH1 32, PUSH1 0, RETURN
	minI256 := new(uint256.Int).Lsh(uint256.NewInt(1), 255) // 2^255, bit pattern of MIN_I256
	minusOne := new(uint256.Int).Not(uint256.NewInt(0))

	// DIV-family opcodes compute top-of-stack / second-from-top, so the
	// divisor must be pushed first to end up second, leaving the dividend
	// on top.
	code := buildPush32Push32Op(minusOne, minI256, SDIV)
	code = append(code, byte(PUSH1), 0, byte(MSTORE), byte(PUSH1), 32, byte(PUSH1), 0, byte(RETURN))

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success")
	}

	var got uint256.Int
	got.SetBytes(result.Output)
	if got.Cmp(minI256) != 0 {
		t.Errorf("expected MIN_I256 unchanged, got %v", &got)
	}
}

func buildPush32Push32Op(a, b *uint256.Int, op OpCode) []byte {
	code := make([]byte, 0, 2*33+1)
	aBytes := a.Bytes32()
	bBytes := b.Bytes32()
	code = append(code, byte(PUSH32))
	code = append(code, aBytes[:]...)
	code = append(code, byte(PUSH32))
	code = append(code, bBytes[:]...)
	code = append(code, byte(op))
	return code
}

func TestRun_JumpToNonJumpdest_FailsWithInvalidJumpDest(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	// PUSH1 5, JUMP, STOP, STOP, STOP: offset 5 holds a STOP, and nothing
	// in this program ever emits a JUMPDEST, so the jump is invalid.
	code := []byte{
		byte(PUSH1), 5,
		byte(JUMP),
		byte(STOP), byte(STOP), byte(STOP),
	}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Errorf("expected failure from invalid jump destination")
	}
}

func TestRun_JumpToValidJumpdest_Succeeds(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	// PUSH1 4, JUMP, STOP, JUMPDEST, STOP
	code := []byte{
		byte(PUSH1), 4,
		byte(JUMP),
		byte(STOP),
		byte(JUMPDEST),
		byte(STOP),
	}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success")
	}
}

func TestRun_SstoreInStaticCall_RejectsWriteProtection(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	// PUSH1 1, PUSH1 0, SSTORE
	code := []byte{
		byte(PUSH1), 1,
		byte(PUSH1), 0,
		byte(SSTORE),
	}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 100000, Static: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Errorf("expected write-protection failure in static call")
	}
}

func TestRun_TruncatedPush_FailsWithUnexpectedEnd(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	// PUSH2 with only one immediate byte remaining before the code ends.
	code := []byte{byte(PUSH2), 0xAB}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 100000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Errorf("expected a truncated PUSH's immediate data to be a hard fault, not a zero-padded read")
	}
}

func TestRun_PushExactlyAtCodeEnd_Succeeds(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	// PUSH2 with exactly two immediate bytes, ending the code.
	code := []byte{byte(PUSH2), 0xAB, 0xCD}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 100000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Errorf("expected a PUSH whose immediate data exactly fits the code to succeed")
	}
}

func TestRun_Push0BeforeShanghai_FailsWithInvalidRevision(t *testing.T) {
	host := newTestHost(t, vm.Istanbul)
	code := []byte{byte(PUSH0), byte(STOP)}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Errorf("expected PUSH0 to fail before Shanghai")
	}
}

func TestRun_Push0OnShanghai_Succeeds(t *testing.T) {
	host := newTestHost(t, vm.Shanghai)
	code := []byte{byte(PUSH0), byte(STOP)}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Errorf("expected PUSH0 to succeed on Shanghai")
	}
}

func TestRun_McopyBeforeCancun_FailsWithInvalidRevision(t *testing.T) {
	host := newTestHost(t, vm.Shanghai)
	code := []byte{
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(PUSH1), 0,
		byte(MCOPY),
	}

	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Errorf("expected MCOPY to fail before Cancun")
	}
}

func TestRun_EmptyCode_SucceedsImmediatelyWithFullGas(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	result, err := Run(vm.Parameters{Context: host, Code: nil, Gas: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.GasLeft != 42 {
		t.Errorf("expected immediate success with unspent gas, got %+v", result)
	}
}

func TestRunWithTracer_InvokesOnStepForEveryInstruction(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 2, byte(ADD), byte(STOP)}

	var steps []OpCode
	tracer := tracerFunc(func(pc int, op OpCode, gas vm.Gas, stackLen int, top *uint256.Int) {
		steps = append(steps, op)
	})

	if _, err := RunWithTracer(vm.Parameters{Context: host, Code: code, Gas: 100}, tracer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []OpCode{PUSH1, PUSH1, ADD, STOP}
	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d: %v", len(want), len(steps), steps)
	}
	for i, op := range want {
		if steps[i] != op {
			t.Errorf("step %d: expected %v, got %v", i, op, steps[i])
		}
	}
}

func TestRun_TopOfStackIsNilWhenStackEmpty(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	code := []byte{byte(STOP)}

	var sawNilTop bool
	tracer := tracerFunc(func(pc int, op OpCode, gas vm.Gas, stackLen int, top *uint256.Int) {
		if stackLen == 0 && top == nil {
			sawNilTop = true
		}
	})

	if _, err := RunWithTracer(vm.Parameters{Context: host, Code: code, Gas: 100}, tracer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawNilTop {
		t.Errorf("expected a nil top observed on an empty stack")
	}
}

// tracerFunc adapts a plain function to the Tracer interface.
type tracerFunc func(pc int, op OpCode, gas vm.Gas, stackLen int, top *uint256.Int)

func (f tracerFunc) OnStep(pc int, op OpCode, gas vm.Gas, stackLen int, top *uint256.Int) {
	f(pc, op, gas, stackLen, top)
}

func TestRun_MaxInt64Gas_NeverOverflowsDuringSimpleRun(t *testing.T) {
	host := newTestHost(t, vm.Cancun)
	code := []byte{byte(PUSH1), 1, byte(STOP)}
	result, err := Run(vm.Parameters{Context: host, Code: code, Gas: vm.Gas(math.MaxInt64)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Errorf("expected success")
	}
}
