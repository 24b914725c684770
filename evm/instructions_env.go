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

func opAddress(c *Context) error {
	f := c.current
	f.stack.pushUndefined().SetBytes(f.msg.Recipient[:])
	return nil
}

func opOrigin(c *Context) error {
	f := c.current
	origin := f.host.GetTransactionContext().Origin
	f.stack.pushUndefined().SetBytes(origin[:])
	return nil
}

func opCaller(c *Context) error {
	f := c.current
	f.stack.pushUndefined().SetBytes(f.msg.Sender[:])
	return nil
}

func opCallValue(c *Context) error {
	f := c.current
	f.stack.pushUndefined().SetBytes32(f.msg.Value[:])
	return nil
}

func opCallDataSize(c *Context) error {
	f := c.current
	f.stack.pushUndefined().SetUint64(uint64(len(f.msg.Input)))
	return nil
}

func opCallDataLoad(c *Context) error {
	f := c.current
	offset := f.stack.peek()
	var buf [32]byte
	if offset.IsUint64() {
		off := offset.Uint64()
		if off < uint64(len(f.msg.Input)) {
			copy(buf[:], f.msg.Input[off:])
		}
	}
	offset.SetBytes32(buf[:])
	return nil
}

func opCallDataCopy(c *Context) error {
	f := c.current
	destOffset, offset, size := f.stack.pop(), f.stack.pop(), f.stack.pop()
	return copyToMemory(f, destOffset, offset, size, f.msg.Input)
}

func opCodeSize(c *Context) error {
	f := c.current
	f.stack.pushUndefined().SetUint64(uint64(len(f.code)))
	return nil
}

func opCodeCopy(c *Context) error {
	f := c.current
	destOffset, offset, size := f.stack.pop(), f.stack.pop(), f.stack.pop()
	return copyToMemory(f, destOffset, offset, size, f.code)
}

func opGasPrice(c *Context) error {
	f := c.current
	price := f.host.GetTransactionContext().GasPrice
	f.stack.pushUndefined().SetBytes32(price[:])
	return nil
}

func opExtCodeSize(c *Context) error {
	f := c.current
	addr := f.stack.peek()
	a := toAddress(addr)
	if err := chargeAccessSurcharge(f, a); err != nil {
		return err
	}
	addr.SetUint64(uint64(f.host.GetCodeSize(a)))
	return nil
}

func opExtCodeHash(c *Context) error {
	f := c.current
	addr := f.stack.peek()
	a := toAddress(addr)
	if err := chargeAccessSurcharge(f, a); err != nil {
		return err
	}
	if !f.host.AccountExists(a) {
		addr.Clear()
		return nil
	}
	hash := f.host.GetCodeHash(a)
	addr.SetBytes32(hash[:])
	return nil
}

func opExtCodeCopy(c *Context) error {
	f := c.current
	addr, destOffset, offset, size := f.stack.pop(), f.stack.pop(), f.stack.pop(), f.stack.pop()
	a := toAddress(addr)
	if err := chargeAccessSurcharge(f, a); err != nil {
		return err
	}
	code := f.host.GetCode(a)
	return copyToMemory(f, destOffset, offset, size, code)
}

func opReturnDataSize(c *Context) error {
	f := c.current
	f.stack.pushUndefined().SetUint64(uint64(len(c.returnData)))
	return nil
}

func opReturnDataCopy(c *Context) error {
	f := c.current
	destOffset, offset, size := f.stack.pop(), f.stack.pop(), f.stack.pop()
	return copyToMemory(f, destOffset, offset, size, c.returnData)
}

// opBlockHash only resolves hashes for the 256 most recent blocks before
// the current one; anything else, including the current block itself,
// yields zero.
func opBlockHash(c *Context) error {
	f := c.current
	n := f.stack.peek()
	upper := f.host.GetTransactionContext().BlockNumber
	lower := upper - 256
	if lower < 0 {
		lower = 0
	}
	if !n.IsUint64() || int64(n.Uint64()) >= upper || int64(n.Uint64()) < lower {
		n.Clear()
		return nil
	}
	hash := f.host.GetBlockHash(int64(n.Uint64()))
	n.SetBytes32(hash[:])
	return nil
}

func opCoinbase(c *Context) error {
	f := c.current
	cb := f.host.GetTransactionContext().Coinbase
	f.stack.pushUndefined().SetBytes(cb[:])
	return nil
}

func opTimestamp(c *Context) error {
	f := c.current
	f.stack.pushUndefined().SetUint64(uint64(f.host.GetTransactionContext().Timestamp))
	return nil
}

func opNumber(c *Context) error {
	f := c.current
	f.stack.pushUndefined().SetUint64(uint64(f.host.GetTransactionContext().BlockNumber))
	return nil
}

func opPrevRandao(c *Context) error {
	f := c.current
	r := f.host.GetTransactionContext().PrevRandao
	f.stack.pushUndefined().SetBytes32(r[:])
	return nil
}

func opGasLimit(c *Context) error {
	f := c.current
	f.stack.pushUndefined().SetUint64(uint64(f.host.GetTransactionContext().GasLimit))
	return nil
}

func opChainId(c *Context) error {
	f := c.current
	id := f.host.GetTransactionContext().ChainID
	f.stack.pushUndefined().SetBytes32(id[:])
	return nil
}

func opSelfBalance(c *Context) error {
	f := c.current
	bal := f.host.GetBalance(f.msg.Recipient)
	f.stack.pushUndefined().SetBytes32(bal[:])
	return nil
}

func opBaseFee(c *Context) error {
	f := c.current
	if f.revision() < vm.London {
		return ErrInvalidRevision
	}
	bf := f.host.GetTransactionContext().BaseFee
	f.stack.pushUndefined().SetBytes32(bf[:])
	return nil
}

func opBlobBaseFee(c *Context) error {
	f := c.current
	if f.revision() < vm.Cancun {
		return ErrInvalidRevision
	}
	bf := f.host.GetTransactionContext().BlobBaseFee
	f.stack.pushUndefined().SetBytes32(bf[:])
	return nil
}

func opBlobHash(c *Context) error {
	f := c.current
	if f.revision() < vm.Cancun {
		return ErrInvalidRevision
	}
	idx := f.stack.peek()
	hashes := f.host.GetTransactionContext().BlobHashes
	if idx.IsUint64() && idx.Uint64() < uint64(len(hashes)) {
		h := hashes[idx.Uint64()]
		idx.SetBytes32(h[:])
	} else {
		idx.Clear()
	}
	return nil
}

func opBalance(c *Context) error {
	f := c.current
	addr := f.stack.peek()
	a := toAddress(addr)
	if err := chargeAccessSurcharge(f, a); err != nil {
		return err
	}
	bal := f.host.GetBalance(a)
	addr.SetBytes32(bal[:])
	return nil
}
