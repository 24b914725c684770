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

func opPop(c *Context) error {
	c.current.stack.pop()
	return nil
}

func opPush0(c *Context) error {
	if c.current.revision() < vm.Shanghai {
		return ErrInvalidRevision
	}
	c.current.stack.pushUndefined().Clear()
	return nil
}

// opPush reads n immediate bytes following the opcode and pushes them as
// a big-endian word, left-padded with zeros if n < 32. A PUSH whose
// immediate data runs past the end of the code is a hard fault, not a
// zero-padded read: an instruction stream is not allowed to imply bytes
// it does not contain.
func opPush(c *Context, n int) error {
	f := c.current
	start := f.pc + 1
	end := start + n
	if end > len(f.code) {
		return ErrUnexpectedEnd
	}
	var buf [32]byte
	copy(buf[32-n:], f.code[start:end])
	f.stack.pushUndefined().SetBytes32(buf[:])
	f.pc += n
	return nil
}

func opDup(c *Context, n int) error {
	c.current.stack.dup(n)
	return nil
}

func opSwap(c *Context, n int) error {
	c.current.stack.swap(n + 1)
	return nil
}

func opPc(c *Context) error {
	c.current.stack.pushUndefined().SetUint64(uint64(c.current.pc))
	return nil
}

func opMsize(c *Context) error {
	c.current.stack.pushUndefined().SetUint64(c.current.memory.length())
	return nil
}

func opGas(c *Context) error {
	c.current.stack.pushUndefined().SetUint64(uint64(c.current.gas))
	return nil
}

func opJumpdest(c *Context) error { return nil }
