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

// opLog implements LOG0..LOG4: n is the number of indexed topics.
func opLog(c *Context, n int) error {
	f := c.current
	if f.static {
		return ErrWriteProtection
	}
	offset, size := f.stack.pop(), f.stack.pop()
	if checkSizeOffsetOverflow(offset, size) {
		return ErrGasUintOverflow
	}
	topics := make([]vm.Hash, n)
	for i := 0; i < n; i++ {
		w := f.stack.pop()
		topics[i] = vm.Hash(w.Bytes32())
	}

	dataLen := size.Uint64()
	if !f.useGas(vm.Gas(dataLen) * 8) {
		return ErrOutOfGas
	}
	data, err := f.memory.getSlice(offset.Uint64(), dataLen, f)
	if err != nil {
		return err
	}
	out := make([]byte, len(data))
	copy(out, data)

	f.host.EmitLog(vm.Log{
		Address: f.msg.Recipient,
		Topics:  topics,
		Data:    out,
	})
	return nil
}
