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

func opStop(c *Context) error {
	c.SetStatus(statusStopped, nil)
	return nil
}

func opJump(c *Context) error {
	f := c.current
	target := f.stack.pop()
	if checkUint64Overflow(target) || !c.destinationsFor(f).isValid(target.Uint64()) {
		return ErrInvalidJumpDest
	}
	f.pc = int(target.Uint64())
	c.SetIsJump(true)
	return nil
}

func opJumpi(c *Context) error {
	f := c.current
	target, cond := f.stack.pop(), f.stack.pop()
	if cond.IsZero() {
		return nil
	}
	if checkUint64Overflow(target) || !c.destinationsFor(f).isValid(target.Uint64()) {
		return ErrInvalidJumpDest
	}
	f.pc = int(target.Uint64())
	c.SetIsJump(true)
	return nil
}

func opReturn(c *Context) error {
	f := c.current
	offset, size := f.stack.pop(), f.stack.pop()
	if checkSizeOffsetOverflow(offset, size) {
		return ErrGasUintOverflow
	}
	out, err := f.memory.getSlice(offset.Uint64(), size.Uint64(), f)
	if err != nil {
		return err
	}
	data := make([]byte, len(out))
	copy(data, out)
	c.returnData = data
	c.SetStatus(statusReturned, nil)
	return nil
}

func opRevert(c *Context) error {
	f := c.current
	offset, size := f.stack.pop(), f.stack.pop()
	if checkSizeOffsetOverflow(offset, size) {
		return ErrGasUintOverflow
	}
	out, err := f.memory.getSlice(offset.Uint64(), size.Uint64(), f)
	if err != nil {
		return err
	}
	data := make([]byte, len(out))
	copy(data, out)
	c.returnData = data
	c.SetStatus(statusReverted, nil)
	return nil
}

func opInvalid(c *Context) error {
	return ErrInvalidInstruction
}
