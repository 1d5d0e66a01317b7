// Command mainseq estimates the properties of main-sequence stars from a
// single seed measurement.
package main

import "github.com/papapumpkin/mainseq/cmd"

func main() {
	cmd.Execute()
}
