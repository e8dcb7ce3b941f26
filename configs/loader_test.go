package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func writeCue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `
str: "bar"
list: [1, 2, 3]
`),
	}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `list: [1]`),
		writeCue(t, `str: "foo"
list: [2]`),
	}, testSchema)

	list, err := First[[]int](loader, "list")
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1]" {
		t.Fatalf("got %s", str)
	}

	str, err := First[string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if str != "foo" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `unknown_field: "x"`),
	}, testSchema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestZeroLoader(t *testing.T) {
	var loader Loader
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	str, err := First[string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if str != "" {
		t.Fatal()
	}
}
