package bbcode

import (
	"strings"
	"testing"
)

const benchInput = "Hello [b]world[/b], this is [i]italic[/i] and [url=http://a.com]a link[/url]\n" +
	"[list][*]one[*]two[/list] visit www.a.com [quote=Tom]wise words[/quote]"

func BenchmarkParse(b *testing.B) {
	p := testParser(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(benchInput)
	}
}

func BenchmarkParse_LongInput(b *testing.B) {
	p := testParser(b)
	input := strings.Repeat(benchInput+"\n", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(input)
	}
}

func BenchmarkParse_PlainText(b *testing.B) {
	p := testParser(b)
	input := strings.Repeat("just some words without any markup ", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(input)
	}
}

func BenchmarkParse_ManyLinks(b *testing.B) {
	p := testParser(b)
	input := strings.Repeat("see http://a.com [b]x[/b] ", 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(input)
	}
}

// Chaos benchmarks - stress tests with malformed input

func BenchmarkParse_Chaos_UnclosedTagStorm(b *testing.B) {
	p := testParser(b)
	input := strings.Repeat("[b][i][u][s]", 50) + "the abyss stares back"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(input)
	}
}

func BenchmarkParse_Chaos_FalseAlarms(b *testing.B) {
	p := testParser(b)
	input := strings.Repeat("[ [/ [= [x [*] [/nope] ", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(input)
	}
}

func BenchmarkParse_Attributes(b *testing.B) {
	p := testParser(b)
	input := strings.Repeat("[quote date=2020 author=Tom]q[/quote]", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(input)
	}
}
