// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vm

import "testing"

func TestGetStorageStatus_ClassifiesAllFiveTransitions(t *testing.T) {
	var zero, one, two Word
	one[31] = 1
	two[31] = 2

	tests := map[string]struct {
		original, current, new Word
		want                    StorageStatus
	}{
		"unchanged_noop":          {zero, zero, zero, StorageUnchanged},
		"unchanged_same_nonzero":  {one, one, one, StorageUnchanged},
		"added":                   {zero, zero, one, StorageAdded},
		"deleted":                 {one, one, zero, StorageDeleted},
		"modified":                {one, one, two, StorageModified},
		"dirty_current_ne_orig":   {zero, one, two, StorageModifiedAgain},
		"dirty_restore_to_orig":   {one, two, one, StorageModifiedAgain},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := GetStorageStatus(test.original, test.current, test.new); got != test.want {
				t.Errorf("GetStorageStatus(%v, %v, %v) = %v, want %v", test.original, test.current, test.new, got, test.want)
			}
		})
	}
}

func TestStorageStatus_String_NamesEachValueAndFallsBackForUnknown(t *testing.T) {
	if got := StorageAdded.String(); got != "Added" {
		t.Errorf("expected Added, got %q", got)
	}
	if got := StorageStatus(99).String(); got != "StorageStatus(99)" {
		t.Errorf("expected fallback format, got %q", got)
	}
}

func TestAddress_MarshalUnmarshalText_RoundTrips(t *testing.T) {
	var a Address
	a[0] = 0xde
	a[19] = 0xef

	text, err := a.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back Address
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != a {
		t.Errorf("expected round trip to preserve the address, got %v", back)
	}
}

func TestAddress_UnmarshalText_RejectsMissingPrefix(t *testing.T) {
	var a Address
	if err := a.UnmarshalText([]byte("deadbeef")); err == nil {
		t.Errorf("expected an error for a value missing the 0x prefix")
	}
}

func TestAddress_UnmarshalText_RejectsWrongLength(t *testing.T) {
	var a Address
	if err := a.UnmarshalText([]byte("0xdead")); err == nil {
		t.Errorf("expected an error for a value of the wrong length")
	}
}

func TestValue_IsZero_DistinguishesZeroFromNonzero(t *testing.T) {
	var v Value
	if !v.IsZero() {
		t.Errorf("expected zero value to report IsZero")
	}
	v[31] = 1
	if v.IsZero() {
		t.Errorf("expected nonzero value to report !IsZero")
	}
}

func TestCallKind_String_NamesEveryKind(t *testing.T) {
	tests := map[CallKind]string{
		Call: "call", CallCode: "call_code", DelegateCall: "delegate_call",
		StaticCall: "static_call", Create: "create", Create2: "create2",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", kind, got, want)
		}
	}
	if got := CallKind(99).String(); got != "unknown" {
		t.Errorf("expected unknown for an undefined kind, got %q", got)
	}
}
