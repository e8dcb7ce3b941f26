package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero("", "a", "b"); v != "a" {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[string](); v != "" {
		t.Fatalf("got %v", v)
	}
}
