package iterextra_test

import (
	"fmt"
	"math"
	"slices"

	"github.com/geofduf/iter-extra/iterextra"
)

func ExampleDeltas() {
	values := []int{1, 1, 2, 2, 3, 3, 2, 3, 4}
	for d := range iterextra.Deltas(slices.Values(values)) {
		fmt.Print(d, " ")
	}
	// Output: 0 0 2 0 4 0 2 1 8
}

func ExampleDeltasBy() {
	values := []float64{1.1, 2.2, 3.3, 1.2, 2.1}
	floor := func(a, b float64) int {
		switch x, y := math.Floor(a), math.Floor(b); {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	fmt.Println(slices.Collect(iterextra.DeltasBy(slices.Values(values), floor)))
	// Output: [0 1 2 2 2]
}

func ExampleDeltasByKey() {
	values := []int{1, 11, 2, 22, 1, 33}
	lastDigit := func(v int) int { return v % 10 }
	fmt.Println(slices.Collect(iterextra.DeltasByKey(slices.Values(values), lastDigit)))
	// Output: [0 0 2 0 2 5]
}

func ExampleDeltaIterator() {
	it := iterextra.NewDeltaIterator(slices.Values([]string{"a", "b", "c", "a", "c"}))
	defer it.Close()
	for it.Next() {
		fmt.Printf("%d:%d\n", it.Index(), it.Current())
	}
	// Output:
	// 0:0
	// 1:1
	// 2:2
	// 3:2
	// 4:1
}

func ExampleMinByPartialKey() {
	values := slices.Values([]float64{1.0, math.NaN(), 2.0, 0.5})
	identity := func(x float64) float64 { return x }

	min, _ := iterextra.MinByPartialKey(values, identity)
	max, _ := iterextra.MaxByPartialKey(values, identity)
	fmt.Println(min, max)

	_, ok := iterextra.MinByPartialKey(slices.Values([]float64{}), identity)
	fmt.Println(ok)
	// Output:
	// 0.5 2
	// false
}
