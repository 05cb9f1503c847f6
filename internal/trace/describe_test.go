package trace

import (
	"math"
	"testing"
)

func nan() float64 { return math.NaN() }

func TestDescribe_English(t *testing.T) {
	steps := Bubble(Array{2, 1})
	if got := steps[0].Description; got != "Initial array" {
		t.Errorf("initial description = %q", got)
	}
	if got := steps.Last().Description; got != "Array is fully sorted" {
		t.Errorf("final description = %q", got)
	}
	settle := Step{Kind: KindSettle, Args: []any{4}}
	if got := Describe(english, settle); got != "Element at position 4 is in place" {
		t.Errorf("settle description = %q", got)
	}
}

func TestDescribe_Russian(t *testing.T) {
	p, err := NewPrinter("ru")
	if err != nil {
		t.Fatalf("NewPrinter: %v", err)
	}
	if got := Describe(p, Step{Kind: KindInitial}); got != "Начальное состояние массива" {
		t.Errorf("initial = %q", got)
	}
	if got := Describe(p, Step{Kind: KindPartial, Args: []any{3}}); got != "Элементы с 0 по 3 отсортированы" {
		t.Errorf("partial = %q", got)
	}
}

func TestNewPrinter_Fallback(t *testing.T) {
	p, err := NewPrinter("de")
	if err != nil {
		t.Fatalf("NewPrinter: %v", err)
	}
	if got := Describe(p, Step{Kind: KindFinal}); got != "Array is fully sorted" {
		t.Errorf("fallback = %q", got)
	}

	if _, err := NewPrinter("!!"); err == nil {
		t.Error("expected parse error")
	}
}
