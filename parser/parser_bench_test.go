package parser

import (
	"fmt"
	"testing"

	"github.com/arloliu/jdom/node"
)

// generateBenchmarkDoc builds a JSON document with the given number of
// records, mixing objects, arrays, and all scalar kinds.
func generateBenchmarkDoc(records int) []byte {
	doc := []byte(`{"records":[`)
	for i := 0; i < records; i++ {
		if i > 0 {
			doc = append(doc, ',')
		}
		doc = append(doc, fmt.Sprintf(
			`{"id":%d,"name":"record-%d","score":%d.%d,"active":%t,"tags":["a","b"],"meta":null}`,
			i, i, i%100, i%10, i%2 == 0)...)
	}

	return append(doc, `]}`...)
}

func BenchmarkParse(b *testing.B) {
	benchSizes := []int{10, 100, 1000}

	for _, records := range benchSizes {
		doc := generateBenchmarkDoc(records)

		b.Run(fmt.Sprintf("%drecords", records), func(b *testing.B) {
			b.SetBytes(int64(len(doc)))
			b.ResetTimer()

			for bi := 0; bi < b.N; bi++ {
				if _, err := Parse(doc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseSharedArena(b *testing.B) {
	benchSizes := []int{10, 100, 1000}

	for _, records := range benchSizes {
		doc := generateBenchmarkDoc(records)
		arena, err := node.NewArena()
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%drecords", records), func(b *testing.B) {
			b.SetBytes(int64(len(doc)))
			b.ResetTimer()

			for bi := 0; bi < b.N; bi++ {
				if _, err := Parse(doc, WithArena(arena)); err != nil {
					b.Fatal(err)
				}
				arena.Reset()
			}
		})
	}
}

func BenchmarkParsePipelined(b *testing.B) {
	doc := generateBenchmarkDoc(1000)

	for _, capacity := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("queue%d", capacity), func(b *testing.B) {
			b.SetBytes(int64(len(doc)))
			b.ResetTimer()

			for bi := 0; bi < b.N; bi++ {
				if _, err := Parse(doc, WithPipeline(capacity)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
