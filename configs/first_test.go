package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `str: "bar"`),
	}, testSchema)

	str, err := First[string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	ptr, err := First[*string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if ptr == nil || *ptr != "bar" {
		t.Fatalf("got %v", ptr)
	}

	list, err := First[[]int](loader, "list")
	if err != nil {
		t.Fatal(err)
	}
	if list != nil {
		t.Fatalf("got %v", list)
	}

	_, err = First[int](loader, "str")
	if err == nil {
		t.Fatal("should error")
	}
}
