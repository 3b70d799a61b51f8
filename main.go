// Public domain.

package main

import "github.com/soniakeys/instcat/internal/icprog"

func main() {
	icprog.Main()
}
