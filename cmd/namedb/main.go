// Command namedb is a small demonstrator for the adaptive radix tree
// implemented by package namedb: it puts and gets names from a tree that
// lives for the lifetime of the process.
package main

import "github.com/k0ekk0ek/namedb/cmd/namedb/cmd"

func main() {
	cmd.Execute()
}
