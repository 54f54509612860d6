package main

import "github.com/lucashmf/grana/cmd"

func main() {
	cmd.Execute()
}
