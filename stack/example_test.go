package stack_test

import (
	"fmt"

	"github.com/isokolov/algokit/stack"
)

func ExampleStack() {
	s := stack.New[int]()
	s.Push(10)
	s.Push(20)
	s.Push(30)

	top, _ := s.Peek()
	fmt.Println(top)

	v, _ := s.Pop()
	fmt.Println(v, s.Len())
	// Output:
	// 30
	// 30 2
}
