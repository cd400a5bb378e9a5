package mallet

import (
	"fmt"
)

type arguments struct {
	Color     *string
	LineCount string
	Verbose   bool
	Rest      []string
}

func Example() {
	config := NewFlagConfiguration().Short("verbose", 'v')
	var args arguments
	remaining, err := Decode(&args,
		[]string{"--line-count", "10", "-v", "report.txt"}, config)
	fmt.Println(args.LineCount, args.Verbose, args.Rest, remaining, err)
	// Output: 10 true [report.txt] [report.txt] <nil>
}

func Example_usage() {
	config := NewFlagConfiguration().Short("verbose", 'v')
	text, _ := Usage(&arguments{}, config, false)
	fmt.Print(text)
	// Output:
	//     --line-count
	//     [--color]
	// -v, [--verbose]
}
