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
	"bytes"
	"strings"
	"testing"

	"github.com/holiman/uint256"
)

func TestInstructionLogger_OnStep_WritesOneLinePerStep(t *testing.T) {
	var buf bytes.Buffer
	logger := NewInstructionLogger(&buf)

	top := uint256.NewInt(7)
	logger.OnStep(0, ADD, 100, 2, top)
	logger.OnStep(1, STOP, 97, 1, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "ADD") || !strings.Contains(lines[0], "100") || !strings.Contains(lines[0], "7") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "STOP") || !strings.Contains(lines[1], "-empty-") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestInstructionLogger_OnStep_StopsWritingAfterFirstError(t *testing.T) {
	logger := NewInstructionLogger(&failingWriter{})
	logger.OnStep(0, ADD, 100, 0, nil)
	logger.OnStep(1, STOP, 97, 0, nil) // should be a no-op, not panic

	l := logger.(*instructionLogger)
	if l.err == nil {
		t.Fatalf("expected the first write to record an error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, bytes.ErrTooLarge
}
