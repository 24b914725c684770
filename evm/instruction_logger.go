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
	"fmt"
	"io"

	"github.com/holiman/uint256"

	"github.com/lumenchain/goevm/vm"
)

// instructionLogger is a Tracer that writes a line per executed
// instruction to an io.Writer, in the form "<op>, <gas>, <top-of-stack>".
type instructionLogger struct {
	out io.Writer
	err error
}

// NewInstructionLogger creates a Tracer that writes one line per executed
// instruction to out.
func NewInstructionLogger(out io.Writer) Tracer {
	return &instructionLogger{out: out}
}

func (l *instructionLogger) OnStep(pc int, op OpCode, gas vm.Gas, stackLen int, top *uint256.Int) {
	if l.out == nil || l.err != nil {
		return
	}
	topStr := "-empty-"
	if top != nil {
		topStr = top.ToBig().String()
	}
	_, l.err = fmt.Fprintf(l.out, "%v, %d, %v\n", op, gas, topStr)
}
