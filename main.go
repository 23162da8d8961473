package main

import "github.com/lukman83/shopfront/cmd"

func main() {
	cmd.Execute()
}
