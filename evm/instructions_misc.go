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

func opSha3(c *Context) error {
	f := c.current
	offset, size := f.stack.pop(), f.stack.peek()
	if checkSizeOffsetOverflow(offset, size) {
		return ErrGasUintOverflow
	}
	data, err := f.memory.getSlice(offset.Uint64(), size.Uint64(), f)
	if err != nil {
		return err
	}
	words := vm.SizeInWords(size.Uint64())
	if !f.useGas(vm.Gas(6 * words)) {
		return ErrOutOfGas
	}
	hash := c.hashKeccak(data)
	size.SetBytes32(hash[:])
	return nil
}

// opSelfDestruct registers the current account for destruction, paying
// out its balance to the beneficiary on the top of the stack.
func opSelfDestruct(c *Context) error {
	f := c.current
	if f.static {
		return ErrWriteProtection
	}
	beneficiary := toAddress(f.stack.pop())
	rev := f.revision()

	exists := f.host.AccountExists(beneficiary)
	transfers := f.host.GetBalance(f.msg.Recipient) != (vm.Value{})
	warm := true
	if rev >= vm.Berlin {
		warm = f.host.AccessAccount(beneficiary) == vm.WarmAccess
	}
	if !f.useGas(selfdestructGas(rev, exists, warm, transfers)) {
		return ErrOutOfGas
	}

	first := f.host.SelfDestruct(f.msg.Recipient, beneficiary)
	if first && rev < vm.London {
		f.refund += SelfdestructRefundGas
	}
	c.SetStatus(statusSelfDestructed, nil)
	return nil
}
