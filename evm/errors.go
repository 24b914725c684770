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

// The errors below are the terminal conditions a frame can end in besides
// ordinary STOP/RETURN/REVERT/SELFDESTRUCT completion. They are compared
// with errors.Is, never inspected by string value.
const (
	ErrOutOfGas                 = vm.ConstError("out of gas")
	ErrStackUnderflow           = vm.ConstError("stack underflow")
	ErrStackOverflow            = vm.ConstError("stack overflow")
	ErrInvalidInstruction       = vm.ConstError("invalid instruction")
	ErrInvalidJumpDest          = vm.ConstError("invalid jump destination")
	ErrWriteProtection          = vm.ConstError("write protection: state mutation in static call")
	ErrGasUintOverflow          = vm.ConstError("gas computation overflowed uint64")
	ErrDepthLimit               = vm.ConstError("call depth exceeded")
	ErrInsufficientBalance      = vm.ConstError("insufficient balance for transfer")
	ErrExecutionReverted        = vm.ConstError("execution reverted")
	ErrMaxCodeSizeExceeded      = vm.ConstError("max code size exceeded")
	ErrMaxInitCodeSizeExceeded  = vm.ConstError("max initcode size exceeded")
	ErrContractAddressCollision = vm.ConstError("contract address collision")
	ErrNonceUintOverflow        = vm.ConstError("nonce uint64 overflow")
	ErrNoCompatibleInterpreter  = vm.ConstError("no compatible interpreter")
	ErrUnexpectedEnd            = vm.ConstError("unexpected end of code")
	ErrInvalidRevision          = vm.ConstError("opcode not introduced in this revision")
)
