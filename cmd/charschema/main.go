// Package main provides the entry point for the charschema CLI.
//
// charschema is a teaching aid for character encodings. It prints tables and
// conversions that explain ASCII, Extended ASCII and Unicode.
//
// Usage:
//
//	charschema
//	charschema char B
//	charschema describe "Hello123"
//	charschema table --start 0 --end 31
//
// See --help for all available options.
package main

// main is the entry point for charschema.
func main() {
	Execute()
}
