// Command demo runs a handful of sample exercises as inline examples.
//
//	go run ./cmd/demo
//	go run ./cmd/demo -v --config expect.yaml
package main

import (
	"unicode/utf8"

	"github.com/roach88/expect"
)

// BucketNames orders names short (up to 3 letters), then medium (4 to 8),
// then long, keeping the input order inside each bucket.
func BucketNames(names []string) []string {
	var short, medium, long []string
	for _, name := range names {
		switch n := utf8.RuneCountInString(name); {
		case n <= 3:
			short = append(short, name)
		case n <= 8:
			medium = append(medium, name)
		default:
			long = append(long, name)
		}
	}

	out := make([]string, 0, len(names))
	out = append(out, short...)
	out = append(out, medium...)
	return append(out, long...)
}

var _ = expect.Examples(func() {
	expect.Equal(BucketNames([]string{"Maria", "Joao", "Pedro", "Ash"}), []string{"Ash", "Maria", "Joao", "Pedro"})
	expect.Equal(BucketNames([]string{"Maria", "Joao", "Pedro", "Joao Vassallo"}), []string{"Maria", "Joao", "Pedro", "Joao Vassallo"})
	expect.Equal(BucketNames([]string{"Maria", "Joao", "Pedro", "Ash", "Joao Vassallo"}), []string{"Ash", "Maria", "Joao", "Pedro", "Joao Vassallo"})
	expect.Equal(BucketNames([]string{}), []string{})
})

// AllUnique reports whether no number appears twice.
func AllUnique(numbers []int) bool {
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}

var _ = expect.Examples(func() {
	expect.Equal(AllUnique([]int{1, 2, 3, 4, 5, 6}), true)
	expect.Equal(AllUnique([]int{1, 2, 5, 4, 5, 6}), false)
	expect.Equal(AllUnique([]int{1, 2, 3, 3, 3, 6}), false)
})

func main() {
	expect.Main()
}
