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

func TestRevision_IsValid_AcceptsOnlyDefinedRevisions(t *testing.T) {
	if !Cancun.IsValid() {
		t.Errorf("expected Cancun to be valid")
	}
	if !Frontier.IsValid() {
		t.Errorf("expected Frontier to be valid")
	}
	if Revision(-1).IsValid() {
		t.Errorf("expected a negative revision to be invalid")
	}
	if Revision(1000).IsValid() {
		t.Errorf("expected an out-of-range revision to be invalid")
	}
}

func TestRevision_String_NamesEveryDefinedRevision(t *testing.T) {
	tests := map[Revision]string{
		Frontier: "Frontier", Homestead: "Homestead", Berlin: "Berlin",
		London: "London", Shanghai: "Shanghai", Cancun: "Cancun",
	}
	for rev, want := range tests {
		if got := rev.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", rev, got, want)
		}
	}
}

func TestRevision_String_FallsBackForUnknownValue(t *testing.T) {
	if got := Revision(1000).String(); got != "Revision(1000)" {
		t.Errorf("unexpected format for unknown revision: %q", got)
	}
}

func TestRevision_TotalOrder_IsMonotonicAcrossForks(t *testing.T) {
	if !(Frontier < Homestead && Homestead < TangerineWhistle &&
		TangerineWhistle < SpuriousDragon && SpuriousDragon < Byzantium &&
		Byzantium < Constantinople && Constantinople < Petersburg &&
		Petersburg < Istanbul && Istanbul < Berlin && Berlin < London &&
		London < Paris && Paris < Shanghai && Shanghai < Cancun) {
		t.Errorf("expected revisions to form a strictly increasing total order")
	}
}

func TestErrUnsupportedRevision_ReportsTheOffendingRevision(t *testing.T) {
	err := &ErrUnsupportedRevision{Revision: Revision(42)}
	if got := err.Error(); got == "" {
		t.Errorf("expected a non-empty error message")
	}
}
