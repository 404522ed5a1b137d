package main

import "github.com/hanifr/storefront/cmd"

func main() {
	cmd.Start()
}
