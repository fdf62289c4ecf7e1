package main

import "github.com/samhoang/claco/cmd"

func main() {
	cmd.Execute()
}
