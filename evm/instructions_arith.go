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

func opAdd(c *Context) error {
	f := c.current
	a := f.stack.pop()
	b := f.stack.peek()
	b.Add(a, b)
	return nil
}

func opSub(c *Context) error {
	f := c.current
	a := f.stack.pop()
	b := f.stack.peek()
	b.Sub(a, b)
	return nil
}

func opMul(c *Context) error {
	f := c.current
	a := f.stack.pop()
	b := f.stack.peek()
	b.Mul(a, b)
	return nil
}

func opDiv(c *Context) error {
	f := c.current
	a := f.stack.pop()
	b := f.stack.peek()
	b.Div(a, b)
	return nil
}

// opSdiv implements signed division. uint256.Int.SDiv follows two's
// complement semantics, including the special case
// MIN_I256 / -1 == MIN_I256 (wrapping, no panic).
func opSdiv(c *Context) error {
	f := c.current
	a := f.stack.pop()
	b := f.stack.peek()
	b.SDiv(a, b)
	return nil
}

func opMod(c *Context) error {
	f := c.current
	a := f.stack.pop()
	b := f.stack.peek()
	b.Mod(a, b)
	return nil
}

func opSmod(c *Context) error {
	f := c.current
	a := f.stack.pop()
	b := f.stack.peek()
	b.SMod(a, b)
	return nil
}

func opAddmod(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.pop()
	n := f.stack.peek()
	n.AddMod(a, b, n)
	return nil
}

func opMulmod(c *Context) error {
	f := c.current
	a, b := f.stack.pop(), f.stack.pop()
	n := f.stack.peek()
	n.MulMod(a, b, n)
	return nil
}

// opExp charges the dynamic per-byte-of-exponent component before
// computing the result: 10 gas per byte before Spurious Dragon, 50 gas
// per byte from EIP-160 onward.
func opExp(c *Context) error {
	f := c.current
	base, exponent := f.stack.pop(), f.stack.peek()
	expByteGas := vm.Gas(10)
	if f.revision() >= vm.SpuriousDragon {
		expByteGas = 50
	}
	if !f.useGas(expByteGas * vm.Gas(exponent.ByteLen())) {
		return ErrOutOfGas
	}
	exponent.Exp(base, exponent)
	return nil
}

func opSignExtend(c *Context) error {
	f := c.current
	back, num := f.stack.pop(), f.stack.peek()
	num.ExtendSign(num, back)
	return nil
}
