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

func opSload(c *Context) error {
	f := c.current
	slot := f.stack.peek()
	key := vm.Key(slot.Bytes32())
	rev := f.revision()
	if rev >= vm.Berlin {
		warm := f.host.AccessStorage(f.msg.Recipient, key) == vm.WarmAccess
		cost := WarmStorageReadCost
		if !warm {
			cost = ColdSloadCost
		}
		if !f.useGas(cost) {
			return ErrOutOfGas
		}
	}
	value := f.host.GetStorage(f.msg.Recipient, key)
	slot.SetBytes32(value[:])
	return nil
}

// opSstore implements the full EIP-2200/2929/3529 gas and refund matrix.
// In a static frame it fails with ErrWriteProtection before touching
// storage.
func opSstore(c *Context) error {
	f := c.current
	if f.static {
		return ErrWriteProtection
	}
	rev := f.revision()
	if rev >= vm.Istanbul && f.gas <= SstoreSentryGas {
		return ErrOutOfGas
	}

	keyWord, valueWord := f.stack.pop(), f.stack.pop()
	key := vm.Key(keyWord.Bytes32())
	newValue := vm.Word(valueWord.Bytes32())

	warm := true
	if rev >= vm.Berlin {
		warm = f.host.AccessStorage(f.msg.Recipient, key) == vm.WarmAccess
	}
	current := f.host.GetStorage(f.msg.Recipient, key)
	original := f.host.GetCommittedStorage(f.msg.Recipient, key)
	status := vm.GetStorageStatus(original, current, newValue)

	charge, refundDelta := sstoreGasAndRefund(rev, status, warm, original, current, newValue)
	if !f.useGas(charge) {
		return ErrOutOfGas
	}
	f.refund += refundDelta
	f.host.SetStorage(f.msg.Recipient, key, newValue)
	return nil
}

func opTload(c *Context) error {
	f := c.current
	if f.revision() < vm.Cancun {
		return ErrInvalidRevision
	}
	slot := f.stack.peek()
	key := vm.Key(slot.Bytes32())
	value := f.host.GetTransientStorage(f.msg.Recipient, key)
	slot.SetBytes32(value[:])
	return nil
}

func opTstore(c *Context) error {
	f := c.current
	if f.revision() < vm.Cancun {
		return ErrInvalidRevision
	}
	if f.static {
		return ErrWriteProtection
	}
	keyWord, valueWord := f.stack.pop(), f.stack.pop()
	key := vm.Key(keyWord.Bytes32())
	value := vm.Word(valueWord.Bytes32())
	f.host.SetTransientStorage(f.msg.Recipient, key, value)
	return nil
}
