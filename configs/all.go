package configs

import (
	"fmt"
	"iter"
)

// All yields the value at path from every config source that defines it, in load order.
// Invalid values panic like First.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("decode config %s: %w", path, err))
			}
			if !yield(v) {
				return
			}
		}
	}
}
