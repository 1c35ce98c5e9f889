package main

import (
	"fmt"
	"sort"

	"github.com/grafikrobot/unordered"
)

func main() {
	m := unordered.NewMap[string, int](0)
	for i, w := range []string{"alpha", "beta", "gamma", "delta", "beta"} {
		m.Set(w, i)
	}
	fmt.Println("len:", m.Len(), "cap:", m.Cap(), "load:", m.LoadFactor())

	if v, ok := m.Get("beta"); ok {
		fmt.Println("beta ->", v)
	}
	m.Delete("alpha")

	var words []string
	m.Range(func(k string, _ int) bool {
		words = append(words, k)
		return true
	})
	sort.Strings(words)
	fmt.Println("keys:", words)

	s := unordered.NewSet[int](16)
	for i := 0; i < 10; i++ {
		s.Add(i * i)
	}
	fmt.Println("squares:", s.Len(), "has 49:", s.Has(49), "has 50:", s.Has(50))
}
