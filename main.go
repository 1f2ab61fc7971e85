package main

import "github.com/bmatsuo/schemer/cmd"

func main() {
	cmd.Execute()
}
