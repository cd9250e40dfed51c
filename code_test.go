package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(0, 0), `""`},
		{MakeCode(1, 0), `"0"`},
		{MakeCode(3, 0x5), `"101"`},
		{MakeCode(4, 0x3), `"0011"`},
	}
	for _, row := range testData {
		if actual := row.hc.String(); actual != row.expect {
			t.Errorf("wrong output for %#v:\n\texpect: %s\n\tactual: %s", row.hc, row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	hc := Code{}.Append(1).Append(0).Append(1).Append(1)
	if expect := MakeCode(4, 0xb); hc != expect {
		t.Errorf("expected %s, got %s", expect, hc)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb) // 1011

	if !hc.HasPrefix(Code{}) {
		t.Errorf("%s should have the empty prefix", hc)
	}
	if !hc.HasPrefix(MakeCode(2, 0x2)) {
		t.Errorf("%s should have prefix \"10\"", hc)
	}
	if !hc.HasPrefix(hc) {
		t.Errorf("%s should be a prefix of itself", hc)
	}
	if hc.HasPrefix(MakeCode(2, 0x3)) {
		t.Errorf("%s should not have prefix \"11\"", hc)
	}
	if hc.HasPrefix(MakeCode(5, 0x16)) {
		t.Errorf("%s should not have a longer prefix", hc)
	}
}
