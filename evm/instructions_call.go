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
	"github.com/holiman/uint256"

	"github.com/lumenchain/goevm/vm"
)

func opCall(c *Context) error         { return doCall(c, vm.Call) }
func opCallCode(c *Context) error     { return doCall(c, vm.CallCode) }
func opDelegateCall(c *Context) error { return doCall(c, vm.DelegateCall) }
func opStaticCall(c *Context) error   { return doCall(c, vm.StaticCall) }

// doCall implements the shared shape of CALL/CALLCODE/DELEGATECALL/
// STATICCALL: read the opcode-specific argument set off the stack,
// compute the 63/64-forwarded gas allowance, expand memory for both the
// input and output regions, delegate execution to the Host, then write
// the success flag and copy the returned output into memory.
func doCall(c *Context, kind vm.CallKind) error {
	f := c.current
	hasValue := kind == vm.Call || kind == vm.CallCode

	requestedGas := f.stack.pop()
	addr := toAddress(f.stack.pop())
	var value uint256.Int
	if hasValue {
		value = *f.stack.pop()
	}
	inOffset, inSize := f.stack.pop(), f.stack.pop()
	outOffset, outSize := f.stack.pop(), f.stack.pop()

	if f.static && hasValue && !value.IsZero() {
		return ErrWriteProtection
	}

	if err := chargeAccessSurcharge(f, addr); err != nil {
		return err
	}

	if checkSizeOffsetOverflow(inOffset, inSize) || checkSizeOffsetOverflow(outOffset, outSize) {
		return ErrGasUintOverflow
	}
	if err := f.memory.expand(inOffset.Uint64(), inSize.Uint64(), f); err != nil {
		return err
	}
	if err := f.memory.expand(outOffset.Uint64(), outSize.Uint64(), f); err != nil {
		return err
	}

	base := vm.Gas(0)
	if hasValue && !value.IsZero() {
		base += CallValueTransferGas
		if !f.host.AccountExists(addr) {
			base += CallNewAccountGas
		}
	}
	if !f.useGas(base) {
		return ErrOutOfGas
	}

	gasLimit := callGas(f.gas, 0, requestedGas)
	if !f.useGas(gasLimit) {
		return ErrOutOfGas
	}
	if hasValue && !value.IsZero() {
		gasLimit += CallStipend
	}

	// A value transfer the caller cannot afford fails the call (pushes 0)
	// without consuming the gas earmarked for the callee.
	if hasValue && !value.IsZero() {
		balance := uint256FromWord(f.host.GetBalance(f.msg.Recipient))
		if balance.Lt(&value) {
			f.gas += gasLimit - CallStipend
			f.stack.pushUndefined().Clear()
			c.returnData = nil
			return nil
		}
	}

	// A static frame demotes any nested CALL to a STATICCALL; CALLCODE,
	// DELEGATECALL and STATICCALL itself are already value-transfer-free.
	effectiveKind := kind
	if f.static && kind == vm.Call {
		effectiveKind = vm.StaticCall
	}

	input := make([]byte, inSize.Uint64())
	f.memory.copyOut(inOffset.Uint64(), input)

	sender := f.msg.Recipient
	recipient := addr
	switch kind {
	case vm.CallCode:
		recipient = f.msg.Recipient
	case vm.DelegateCall:
		sender = f.msg.Sender
		recipient = f.msg.Recipient
		value = uint256FromWord(f.msg.Value)
	}

	var valueOut vm.Value
	wb := value.Bytes32()
	copy(valueOut[:], wb[:])

	result, err := f.host.Call(effectiveKind, vm.CallParameters{
		Sender:      sender,
		Recipient:   recipient,
		Value:       valueOut,
		Input:       input,
		Gas:         gasLimit,
		CodeAddress: addr,
	})
	if err != nil {
		return err
	}

	f.gas += result.GasLeft
	f.refund += result.GasRefund
	c.returnData = result.Output

	out := make([]byte, outSize.Uint64())
	copy(out, result.Output)
	if err := f.memory.set(outOffset.Uint64(), outSize.Uint64(), out, f); err != nil {
		return err
	}

	success := f.stack.pushUndefined()
	if result.Success {
		success.SetOne()
	} else {
		success.Clear()
	}
	return nil
}

func uint256FromWord(w vm.Value) uint256.Int {
	var v uint256.Int
	v.SetBytes(w[:])
	return v
}
