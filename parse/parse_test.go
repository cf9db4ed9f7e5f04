package parse

import (
	"testing"
)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestStringAsPrimitives(t *testing.T) {
	s, err := StringAs[string]("  hello  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "hello" {
		t.Errorf("expected trimmed string, got %q", s)
	}

	n, err := StringAs[int]("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}

	b, err := StringAs[bool]("true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b {
		t.Error("expected true")
	}

	f, err := StringAs[float64]("1.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 1.5 {
		t.Errorf("expected 1.5, got %f", f)
	}
}

func TestStringAsPrimitiveFailure(t *testing.T) {
	if _, err := StringAs[int]("not a number"); err == nil {
		t.Error("expected error for invalid int")
	}
	if _, err := StringAs[bool]("maybe"); err == nil {
		t.Error("expected error for invalid bool")
	}
}

func TestStringAsStruct(t *testing.T) {
	p, err := StringAs[person](`{"name":"John","age":30}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "John" || p.Age != 30 {
		t.Errorf("unexpected result: %+v", p)
	}
}

func TestStringAsRepairsSloppyJSON(t *testing.T) {
	p, err := StringAs[person](`{name: 'John', age: 30,}`)
	if err != nil {
		t.Fatalf("expected repair to recover, got: %v", err)
	}
	if p.Name != "John" || p.Age != 30 {
		t.Errorf("unexpected result: %+v", p)
	}
}

func TestStringAsStripsCodeFence(t *testing.T) {
	content := "```json\n{\"name\":\"John\",\"age\":30}\n```"
	p, err := StringAs[person](content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "John" {
		t.Errorf("unexpected result: %+v", p)
	}
}

func TestStringAsMap(t *testing.T) {
	m, err := StringAs[map[string]any](`{"a":1}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["a"] != float64(1) {
		t.Errorf("unexpected result: %v", m)
	}
}

func TestStringAsSlice(t *testing.T) {
	values, err := StringAs[[]int](`[1, 2, 3]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 3 || values[2] != 3 {
		t.Errorf("unexpected result: %v", values)
	}
}

func TestStringAsUnrecoverableContent(t *testing.T) {
	if _, err := StringAs[person]("I cannot answer that."); err == nil {
		t.Error("expected error for prose content")
	}
}
