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

import "github.com/lumenchain/goevm/vm"

// Frame is the execution state of a single contract invocation: its
// code, program counter, stack, memory, remaining gas and accumulated
// refund. A Frame knows nothing about the chain of calls that led to it
// or the terminal status of the run; that is Context's job.
type Frame struct {
	code   vm.Code
	pc     int
	stack  *stack
	memory *memory
	gas    vm.Gas
	refund vm.Gas

	msg    vm.Parameters
	host   vm.Host
	static bool

	jumpdests *jumpDestinations
}

// codeHash returns the frame's code hash, computing it if the caller
// (e.g. a top-level Run) did not already supply one.
func (f *Frame) codeHash() vm.Hash {
	if f.msg.CodeHash != nil {
		return *f.msg.CodeHash
	}
	return Keccak256(f.code)
}

// newFrame builds a fresh Frame ready to execute from pc 0, pulling a
// stack instance from the shared pool.
func newFrame(msg vm.Parameters) *Frame {
	return &Frame{
		code:   msg.Code,
		stack:  newStack(),
		memory: newMemory(),
		gas:    msg.Gas,
		msg:    msg,
		host:   msg.Context,
		static: msg.Static,
	}
}

// release returns pooled resources. Call exactly once, after the frame's
// result has been extracted.
func (f *Frame) release() {
	returnStack(f.stack)
	f.stack = nil
}

// useGas attempts to deduct amount from the frame's remaining gas. It
// returns false, leaving gas unchanged, if amount exceeds what remains.
func (f *Frame) useGas(amount vm.Gas) bool {
	if amount < 0 || f.gas < amount {
		return false
	}
	f.gas -= amount
	return true
}

func (f *Frame) revision() vm.Revision {
	return f.host.GetTransactionContext().Revision
}

func (f *Frame) currentOp() OpCode {
	if f.pc >= len(f.code) {
		return STOP
	}
	return OpCode(f.code[f.pc])
}
