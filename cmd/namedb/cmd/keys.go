package cmd

import (
	"strings"

	"github.com/k0ekk0ek/namedb"
	"github.com/k0ekk0ek/namedb/dname"
)

// splitNameValue splits a "name=value" command-line argument the way
// main.c's put_key does; an argument with no '=' gets a fixed placeholder
// value, matching the source's fallback of "foobar".
func splitNameValue(arg string) (name, value string) {
	if i := strings.IndexByte(arg, '='); i >= 0 {
		return arg[:i], arg[i+1:]
	}
	return arg, "foobar"
}

// makeKeyFromName parses a presentation-format name into its wire form and
// then into a radix key, chaining the two parsing stages a caller otherwise
// has to remember to do in order.
func makeKeyFromName(name string) (namedb.Key, error) {
	wire, err := dname.ParseWire(name)
	if err != nil {
		return nil, err
	}
	return namedb.MakeKey(wire)
}
