package stack

import "testing"

func TestStack(t *testing.T) {
	var s Stack[int]
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop on empty stack returned ok")
	}

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	for want := 3; want >= 1; want-- {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %d, %v, want %d, true", got, ok, want)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d after draining, want 0", s.Len())
	}
}
