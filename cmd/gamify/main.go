package main

import "github.com/mfehric/gamify/cmd/gamify/root"

func main() {
	root.Execute()
}
