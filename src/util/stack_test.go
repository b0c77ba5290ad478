package util

import "testing"

// TestStackPushPopOrder checks the basic LIFO contract.
func TestStackPushPopOrder(t *testing.T) {
	s := &Stack{}
	s.Push("a")
	s.Push("b")
	s.Push("c")

	if got := s.Pop(); got != "c" {
		t.Fatalf("expected 'c', got %v", got)
	}
	if got := s.Pop(); got != "b" {
		t.Fatalf("expected 'b', got %v", got)
	}
	if got := s.Pop(); got != "a" {
		t.Fatalf("expected 'a', got %v", got)
	}
	if got := s.Pop(); got != nil {
		t.Fatalf("expected nil on an empty stack, got %v", got)
	}
}

// TestStackGetIsTopDown exercises the documented Get(n) convention: Get(1)
// is the most recently pushed element (the top), Get(Size()) is the first
// one pushed (the bottom). This is the exact contract coloring.go's
// AssignColors depends on to walk the stack in push order.
func TestStackGetIsTopDown(t *testing.T) {
	s := &Stack{}
	s.Push("bottom")
	s.Push("middle")
	s.Push("top")

	if got := s.Get(1); got != "top" {
		t.Errorf("expected Get(1) == 'top', got %v", got)
	}
	if got := s.Get(2); got != "middle" {
		t.Errorf("expected Get(2) == 'middle', got %v", got)
	}
	if got := s.Get(3); got != "bottom" {
		t.Errorf("expected Get(3) == 'bottom', got %v", got)
	}
	if got := s.Get(s.Size()); got != "bottom" {
		t.Errorf("expected Get(Size()) == 'bottom', got %v", got)
	}
	if got := s.Get(0); got != nil {
		t.Errorf("expected Get(0) to be nil, got %v", got)
	}
	if got := s.Get(4); got != nil {
		t.Errorf("expected an out-of-range Get to be nil, got %v", got)
	}
}

// TestStackPeekMatchesGetOne checks that Peek is equivalent to Get(1).
func TestStackPeekMatchesGetOne(t *testing.T) {
	s := &Stack{}
	s.Push(1)
	s.Push(2)

	if s.Peek() != s.Get(1) {
		t.Errorf("expected Peek() to equal Get(1), got %v and %v", s.Peek(), s.Get(1))
	}
}

// TestStackIgnoresNil checks that Push silently drops nil values, as the
// package doc promises.
func TestStackIgnoresNil(t *testing.T) {
	s := &Stack{}
	s.Push(nil)
	if s.Size() != 0 {
		t.Errorf("expected a nil push to be ignored, got size %d", s.Size())
	}
}
