package main

import "github.com/kmerkv/kmerkv/cmd/kmerkv/cmd"

func main() {
	cmd.Execute()
}
