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

// handlerFunc executes one opcode against the context's active frame.
type handlerFunc func(c *Context) error

// handlers is the [OpCode] -> handler_fn dispatch table, built once at
// package initialization instead of branching on the opcode value at
// every step of every run.
var handlers = newOpCodePropertyMap(buildHandler)

func buildHandler(op OpCode) handlerFunc {
	if op.IsPush() && op != PUSH0 {
		n := op.PushSize()
		return func(c *Context) error { return opPush(c, n) }
	}
	if op >= DUP1 && op <= DUP16 {
		n := int(op-DUP1) + 1
		return func(c *Context) error { return opDup(c, n) }
	}
	if op >= SWAP1 && op <= SWAP16 {
		n := int(op-SWAP1) + 1
		return func(c *Context) error { return opSwap(c, n) }
	}
	if op >= LOG0 && op <= LOG4 {
		n := int(op - LOG0)
		return func(c *Context) error { return opLog(c, n) }
	}
	if h, ok := baseHandlers[op]; ok {
		return h
	}
	return opInvalid
}

// baseHandlers covers every opcode that is not part of a mechanically
// generated PUSH/DUP/SWAP/LOG family.
var baseHandlers = map[OpCode]handlerFunc{
	STOP: opStop,

	ADD: opAdd, MUL: opMul, SUB: opSub, DIV: opDiv, SDIV: opSdiv,
	MOD: opMod, SMOD: opSmod, ADDMOD: opAddmod, MULMOD: opMulmod,
	EXP: opExp, SIGNEXTEND: opSignExtend,

	LT: opLt, GT: opGt, SLT: opSlt, SGT: opSgt, EQ: opEq, ISZERO: opIszero,
	AND: opAnd, OR: opOr, XOR: opXor, NOT: opNot, BYTE: opByte,
	SHL: opShl, SHR: opShr, SAR: opSar,

	SHA3: opSha3,

	ADDRESS: opAddress, BALANCE: opBalance, ORIGIN: opOrigin, CALLER: opCaller,
	CALLVALUE: opCallValue, CALLDATALOAD: opCallDataLoad,
	CALLDATASIZE: opCallDataSize, CALLDATACOPY: opCallDataCopy,
	CODESIZE: opCodeSize, CODECOPY: opCodeCopy, GASPRICE: opGasPrice,
	EXTCODESIZE: opExtCodeSize, EXTCODECOPY: opExtCodeCopy,
	RETURNDATASIZE: opReturnDataSize, RETURNDATACOPY: opReturnDataCopy,
	EXTCODEHASH: opExtCodeHash,

	BLOCKHASH: opBlockHash, COINBASE: opCoinbase, TIMESTAMP: opTimestamp,
	NUMBER: opNumber, PREVRANDAO: opPrevRandao, GASLIMIT: opGasLimit,
	CHAINID: opChainId, SELFBALANCE: opSelfBalance, BASEFEE: opBaseFee,
	BLOBHASH: opBlobHash, BLOBBASEFEE: opBlobBaseFee,

	POP: opPop, MLOAD: opMload, MSTORE: opMstore, MSTORE8: opMstore8,
	SLOAD: opSload, SSTORE: opSstore, JUMP: opJump, JUMPI: opJumpi,
	PC: opPc, MSIZE: opMsize, GAS: opGas, JUMPDEST: opJumpdest,
	TLOAD: opTload, TSTORE: opTstore, MCOPY: opMcopy, PUSH0: opPush0,

	CREATE: opCreate, CALL: opCall, CALLCODE: opCallCode,
	RETURN: opReturn, DELEGATECALL: opDelegateCall, CREATE2: opCreate2,
	STATICCALL: opStaticCall, REVERT: opRevert, INVALID: opInvalid,
	SELFDESTRUCT: opSelfDestruct,
}

// Tracer observes every instruction an execution steps over, before the
// instruction's handler runs. stackLen is the depth of the stack at that
// point and top is its top element, or nil if the stack is empty.
type Tracer interface {
	OnStep(pc int, op OpCode, gas vm.Gas, stackLen int, top *uint256.Int)
}

// Run executes msg as a single frame to completion and returns its
// result. The supplied Host is consulted for every effect that escapes
// the frame (storage, balances, sub-calls, logs).
func Run(msg vm.Parameters) (vm.Result, error) {
	return RunWithConfig(msg, Config{}, nil)
}

// RunWithTracer behaves like Run but additionally reports every step to
// tracer, which may be nil to disable tracing entirely.
func RunWithTracer(msg vm.Parameters, tracer Tracer) (vm.Result, error) {
	return RunWithConfig(msg, Config{}, tracer)
}

// RunWithConfig behaves like Run but applies cfg's cache and logging
// toggles instead of the package defaults, additionally reporting every
// step to tracer (which may be nil, and is combined with cfg.Logger's
// implicit InstructionLogger if both are set).
func RunWithConfig(msg vm.Parameters, cfg Config, tracer Tracer) (vm.Result, error) {
	if len(msg.Code) == 0 {
		return vm.Result{Success: true, GasLeft: msg.Gas}, nil
	}

	if cfg.Logger != nil {
		tracer = CombineTracers(NewInstructionLogger(cfg.Logger), tracer)
	}

	ctxt := NewContextWithConfig(msg, cfg)
	defer ctxt.current.release()

	if err := executeLoop(ctxt, tracer); err != nil {
		return vm.Result{}, err
	}
	return buildResult(ctxt)
}

// CombineTracers fans a single step out to both a and b, either of which
// may be nil.
func CombineTracers(a, b Tracer) Tracer {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return tracerPair{a, b}
}

type tracerPair struct {
	a, b Tracer
}

func (p tracerPair) OnStep(pc int, op OpCode, gas vm.Gas, stackLen int, top *uint256.Int) {
	p.a.OnStep(pc, op, gas, stackLen, top)
	p.b.OnStep(pc, op, gas, stackLen, top)
}

func executeLoop(c *Context, tracer Tracer) error {
	f := c.current
	rev := f.revision()

	for c.status == statusRunning {
		if f.pc >= len(f.code) {
			c.SetStatus(statusStopped, nil)
			break
		}

		op := OpCode(f.code[f.pc])

		if tracer != nil {
			var top *uint256.Int
			if f.stack.len() > 0 {
				top = f.stack.peek()
			}
			tracer.OnStep(f.pc, op, f.gas, f.stack.len(), top)
		}

		if err := checkStackRequirement(op, f.stack.len()); err != nil {
			c.SetStatus(statusFailed, err)
			break
		}

		if !f.useGas(staticGasPrice(op, rev)) {
			c.SetStatus(statusFailed, ErrOutOfGas)
			break
		}

		c.SetIsJump(false)
		handler := handlers.get(op)
		if err := handler(c); err != nil {
			c.SetStatus(statusFailed, err)
			break
		}

		if c.status != statusRunning {
			break
		}
		if !c.IsJump() {
			f.pc++
		}
	}

	if c.status == statusFailed {
		if c.err == nil {
			return nil
		}
		// Distinguish caller-facing failures (reported via Result.Success
		// == false) from unrecoverable runtime errors. Every error defined
		// in this package represents the former.
	}
	return nil
}

func buildResult(c *Context) (vm.Result, error) {
	f := c.current
	switch c.status {
	case statusStopped, statusSelfDestructed:
		return vm.Result{Success: true, GasLeft: f.gas, GasRefund: f.refund}, nil
	case statusReturned:
		return vm.Result{Success: true, Output: c.returnData, GasLeft: f.gas, GasRefund: f.refund}, nil
	case statusReverted:
		return vm.Result{Success: false, Output: c.returnData, GasLeft: f.gas}, nil
	case statusFailed:
		return vm.Result{Success: false}, nil
	default:
		return vm.Result{}, ErrNoCompatibleInterpreter
	}
}
