//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-md2post/internal/event"
)

// BenchmarkRender benchmarks the event renderer by document size.
func BenchmarkRender(b *testing.B) {
	sizes := []int{1, 10, 50, 200}

	for _, size := range sizes {
		events := generateMixedEvents(size)
		b.Run(fmt.Sprintf("sections_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Render(events, Options{DocumentID: "bench"}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRenderParallel benchmarks independent concurrent renders.
func BenchmarkRenderParallel(b *testing.B) {
	events := generateMixedEvents(20)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := Render(events, Options{DocumentID: "bench"}); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkStockConverter benchmarks the goldmark baseline on equivalent input.
func BenchmarkStockConverter(b *testing.B) {
	converter := NewStockConverter("monokai")
	ctx := context.Background()
	content := []byte(generateMixedMarkdown(20))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := converter.ToHTML(ctx, content); err != nil {
			b.Fatal(err)
		}
	}
}

// Helper functions for generating benchmark input

func generateMixedEvents(sections int) []event.Event {
	evs := []event.Event{
		event.Start(event.Heading(1)), event.Text("Document Title"), event.End(),
	}
	for i := 0; i < sections; i++ {
		evs = append(evs,
			event.Start(event.Heading(2)), event.Text(fmt.Sprintf("Section %d", i+1)), event.End(),
			event.Start(event.Paragraph()),
			event.Text("A paragraph with "),
			event.Start(event.Link("https://example.com", "")), event.Text("links"), event.End(),
			event.Text(" and "), event.Code("inline code"), event.Text("."),
			event.End(),
			event.Start(event.BulletList()),
			event.Start(event.ListItem()), event.Text("one"), event.End(),
			event.Start(event.ListItem()), event.Text("two"), event.End(),
			event.End(),
		)
		if i%3 == 0 {
			evs = append(evs,
				event.Start(event.CodeBlock("bash")), event.Text("echo one\n\necho two\n"), event.End(),
				event.Start(event.CodeBlock("go")), event.Text("func main() {}\n"), event.End(),
			)
		}
		if i%5 == 0 {
			evs = append(evs,
				event.Start(event.Image(fmt.Sprintf("shot-%d.png", i), "caption")), event.Text("alt"), event.End(),
			)
		}
	}
	return evs
}

func generateMixedMarkdown(sections int) string {
	var sb strings.Builder
	sb.WriteString("# Document Title\n\n")
	for i := 0; i < sections; i++ {
		fmt.Fprintf(&sb, "## Section %d\n\n", i+1)
		sb.WriteString("A paragraph with [links](https://example.com) and `inline code`.\n\n")
		sb.WriteString("- one\n- two\n\n")
		if i%3 == 0 {
			sb.WriteString("```bash\necho one\n\necho two\n```\n\n```go\nfunc main() {}\n```\n\n")
		}
	}
	return sb.String()
}
