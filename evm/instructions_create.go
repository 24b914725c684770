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

func opCreate(c *Context) error  { return doCreate(c, vm.Create) }
func opCreate2(c *Context) error { return doCreate(c, vm.Create2) }

// doCreate implements the shared shape of CREATE/CREATE2: charge the
// Shanghai init-code-size surcharge and (for CREATE2) the salted-address
// hashing surcharge, apply the EIP-150 63/64 gas-forwarding rule to the
// full remaining gas balance, delegate to the Host, then push either the
// created address or zero.
func doCreate(c *Context, kind vm.CallKind) error {
	f := c.current
	if f.static {
		return ErrWriteProtection
	}

	value := f.stack.pop()
	offset, size := f.stack.pop(), f.stack.pop()
	var salt vm.Hash
	if kind == vm.Create2 {
		salt = vm.Hash(f.stack.pop().Bytes32())
	}

	if checkSizeOffsetOverflow(offset, size) {
		return ErrGasUintOverflow
	}
	sizeU64 := size.Uint64()

	rev := f.revision()
	if rev >= vm.Shanghai {
		if sizeU64 > MaxInitCodeSize {
			return ErrMaxInitCodeSizeExceeded
		}
		if !f.useGas(initCodeWordCost(rev, sizeU64)) {
			return ErrOutOfGas
		}
	}

	init, err := f.memory.getSlice(offset.Uint64(), sizeU64, f)
	if err != nil {
		return err
	}

	if kind == vm.Create2 {
		if !f.useGas(vm.Gas(6 * vm.SizeInWords(sizeU64))) {
			return ErrOutOfGas
		}
	}

	if !value.IsZero() {
		balance := uint256FromWord(f.host.GetBalance(f.msg.Recipient))
		if value.Gt(&balance) {
			f.stack.pushUndefined().Clear()
			c.returnData = nil
			return nil
		}
	}

	gasLimit := f.gas
	if rev >= vm.TangerineWhistle {
		gasLimit -= f.gas / 64
	}
	if !f.useGas(gasLimit) {
		return ErrOutOfGas
	}

	var valueOut vm.Value
	wb := value.Bytes32()
	copy(valueOut[:], wb[:])

	result, err := f.host.Call(kind, vm.CallParameters{
		Sender: f.msg.Recipient,
		Value:  valueOut,
		Input:  init,
		Gas:    gasLimit,
		Salt:   salt,
	})
	if err != nil {
		return err
	}

	f.gas += result.GasLeft
	f.refund += result.GasRefund

	success := f.stack.pushUndefined()
	if result.Success {
		success.SetBytes(result.CreatedAddress[:])
		c.returnData = nil
	} else {
		success.Clear()
		c.returnData = result.Output
	}
	return nil
}
