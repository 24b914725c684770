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

func opLt(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.peek()
	if a.Lt(b) {
		b.SetOne()
	} else {
		b.Clear()
	}
	return nil
}

func opGt(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.peek()
	if a.Gt(b) {
		b.SetOne()
	} else {
		b.Clear()
	}
	return nil
}

func opSlt(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.peek()
	if a.Slt(b) {
		b.SetOne()
	} else {
		b.Clear()
	}
	return nil
}

func opSgt(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.peek()
	if a.Sgt(b) {
		b.SetOne()
	} else {
		b.Clear()
	}
	return nil
}

func opEq(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.peek()
	if a.Eq(b) {
		b.SetOne()
	} else {
		b.Clear()
	}
	return nil
}

func opIszero(c *Context) error {
	f := c.current
	a := f.stack.peek()
	if a.IsZero() {
		a.SetOne()
	} else {
		a.Clear()
	}
	return nil
}

func opAnd(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.peek()
	b.And(a, b)
	return nil
}

func opOr(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.peek()
	b.Or(a, b)
	return nil
}

func opXor(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.peek()
	b.Xor(a, b)
	return nil
}

func opNot(c *Context) error {
	f := c.current
	a := f.stack.peek()
	a.Not(a)
	return nil
}

func opByte(c *Context) error {
	f := c.current
	th, val := f.stack.pop(), f.stack.peek()
	val.Byte(th)
	return nil
}

func opShl(c *Context) error {
	f := c.current
	shift, value := f.stack.pop(), f.stack.peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil
}

func opShr(c *Context) error {
	f := c.current
	shift, value := f.stack.pop(), f.stack.peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil
}

func opSar(c *Context) error {
	f := c.current
	shift, value := f.stack.pop(), f.stack.peek()
	if shift.GtUint64(256) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return nil
	}
	value.SRsh(value, uint(shift.Uint64()))
	return nil
}
