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

func opMload(c *Context) error {
	f := c.current
	offset := f.stack.peek()
	if checkUint64Overflow(offset) {
		return ErrGasUintOverflow
	}
	return f.memory.readWord(offset.Uint64(), offset, f)
}

func opMstore(c *Context) error {
	f := c.current
	offset, value := f.stack.pop(), f.stack.pop()
	if checkUint64Overflow(offset) {
		return ErrGasUintOverflow
	}
	return f.memory.setWord(offset.Uint64(), value, f)
}

func opMstore8(c *Context) error {
	f := c.current
	offset, value := f.stack.pop(), f.stack.pop()
	if checkUint64Overflow(offset) {
		return ErrGasUintOverflow
	}
	return f.memory.setByte(offset.Uint64(), byte(value.Uint64()), f)
}

// opMcopy implements the Cancun EIP-5656 memory-to-memory copy. It must
// charge for any destination-side expansion before the copy and must
// tolerate overlapping source/destination ranges.
func opMcopy(c *Context) error {
	f := c.current
	if f.revision() < vm.Cancun {
		return ErrInvalidRevision
	}
	dst, src, size := f.stack.pop(), f.stack.pop(), f.stack.pop()
	if checkSizeOffsetOverflow(src, size) || checkSizeOffsetOverflow(dst, size) {
		return ErrGasUintOverflow
	}
	n := size.Uint64()
	if n == 0 {
		return nil
	}
	if !f.useGas(gasCopyWords(n)) {
		return ErrOutOfGas
	}
	hi := dst.Uint64()
	if src.Uint64() > hi {
		hi = src.Uint64()
	}
	if err := f.memory.expand(0, hi+n, f); err != nil {
		return err
	}
	copy(f.memory.store[dst.Uint64():dst.Uint64()+n], f.memory.store[src.Uint64():src.Uint64()+n])
	return nil
}

// gasCopyWords returns the EIP-3 word-copy surcharge (3 gas per 32-byte
// word, rounding up) shared by every *COPY opcode.
func gasCopyWords(size uint64) vm.Gas {
	return vm.Gas(((size + 31) / 32) * 3)
}
