// Command bagdemo builds sample bags and prints their union, intersection and
// difference using either storage kind.
package main

import "github.com/STBoyden/gobag/internal/cli"

func main() {
	cli.Execute()
}
