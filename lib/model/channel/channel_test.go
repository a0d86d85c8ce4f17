// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"encoding/json"
	"testing"
)

func TestTypeString(t *testing.T) {
	if GuildText.String() != "GuildText" {
		t.Errorf("GuildText.String() = %q", GuildText.String())
	}
	if Type(99).String() != "Unknown(99)" {
		t.Errorf("Type(99).String() = %q", Type(99).String())
	}
	if Type(99).IsKnown() {
		t.Error("Type(99).IsKnown() = true")
	}
	if !GuildPublicThread.IsThread() || GuildVoice.IsThread() {
		t.Error("IsThread misclassifies thread kinds")
	}
}

func TestTypeJSONPreservesUnknownCodes(t *testing.T) {
	var types []Type
	if err := json.Unmarshal([]byte(`[0,13,99]`), &types); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	data, err := json.Marshal(types)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `[0,13,99]` {
		t.Errorf("round-trip = %s, want [0,13,99]", data)
	}
}

func TestTypeUnmarshalRejectsNonInteger(t *testing.T) {
	for _, input := range []string{`"0"`, `1.5`, `256`, `-1`} {
		var kind Type
		if err := json.Unmarshal([]byte(input), &kind); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", input)
		}
	}
}
