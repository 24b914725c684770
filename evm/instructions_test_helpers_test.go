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

import (
	"github.com/holiman/uint256"

	"github.com/lumenchain/goevm/vm"
)

// revisionOnlyHost satisfies vm.Host by embedding a nil interface and
// overriding only GetTransactionContext, for handler tests that need a
// revision but never touch state.
type revisionOnlyHost struct {
	vm.Host
	revision vm.Revision
}

func (h revisionOnlyHost) GetTransactionContext() vm.TransactionContext {
	return vm.TransactionContext{Revision: h.revision}
}

// newTestContext builds a Context around a bare Frame with a fresh stack
// and memory, values pushed bottom-to-top, ready to drive a single
// instruction handler directly without going through Run. The frame's
// revision defaults to Cancun.
func newTestContext(gas vm.Gas, values ...*uint256.Int) *Context {
	f := &Frame{
		stack:  newStack(),
		memory: newMemory(),
		gas:    gas,
		host:   revisionOnlyHost{revision: vm.Cancun},
	}
	for _, v := range values {
		f.stack.push(v)
	}
	return &Context{current: f, status: statusRunning}
}
