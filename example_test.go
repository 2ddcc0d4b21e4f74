package kmp_test

import (
	"fmt"

	"github.com/coregx/kmp"
)

// ExamplePrepare shows the failure table built for a periodic needle.
func ExamplePrepare() {
	fmt.Println(kmp.Prepare([]byte("ABCABABC")))
	// Output: [None None None None Some(1) Some(2) Some(1) Some(2)]
}

// ExampleSearch demonstrates reusing one table across several haystacks.
func ExampleSearch() {
	needle := []byte("ABCABABC")
	table := kmp.Prepare(needle)

	for _, haystack := range []string{"ABCABCABABC", "ABXABCABABC", "ABCABAB"} {
		pos, ok := kmp.Search(needle, table, []byte(haystack))
		fmt.Println(pos, ok)
	}
	// Output:
	// 3 true
	// 3 true
	// -1 false
}

// ExampleSearch_emptyNeedle shows that the empty needle matches at offset 0.
func ExampleSearch_emptyNeedle() {
	pos, ok := kmp.Search(nil, kmp.Prepare(nil), nil)
	fmt.Println(pos, ok)
	// Output: 0 true
}

// ExampleCompile demonstrates building a Matcher.
func ExampleCompile() {
	m, err := kmp.Compile([]byte("world"))
	if err != nil {
		panic(err)
	}

	fmt.Println(m.Index([]byte("hello world")))
	// Output: 6
}

// ExampleMatcher_Match demonstrates a containment check.
func ExampleMatcher_Match() {
	m := kmp.MustCompile([]byte("\r\n\r\n"))
	fmt.Println(m.Match([]byte("GET / HTTP/1.1\r\nHost: a\r\n\r\n")))
	fmt.Println(m.MatchString("partial header\r\n"))
	// Output:
	// true
	// false
}

// ExampleCompileWithConfig demonstrates a needle length limit.
func ExampleCompileWithConfig() {
	config := kmp.DefaultConfig().WithMaxNeedleLen(4)
	_, err := kmp.CompileWithConfig([]byte("too long"), config)
	fmt.Println(err)
	// Output: kmp: needle length 8 exceeds MaxNeedleLen 4
}
