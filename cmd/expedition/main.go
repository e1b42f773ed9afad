package main

import "github.com/summitworks/expedition/cmd/expedition/root"

func main() {
	root.Execute()
}
