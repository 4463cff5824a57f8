// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package internal

import (
	"iter"
)

// DefinesConcat chains several define tables into one sequence. Later
// tables are visited after earlier ones, so a consumer that stores into
// a map lets the later table win on duplicate names.
func DefinesConcat(seqs ...iter.Seq2[string, string]) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, seq := range seqs {
			for name, value := range seq {
				if !yield(name, value) {
					return
				}
			}
		}
	}
}
