package main

import "github.com/inovacc/tickr/cmd"

func main() {
	cmd.Execute()
}
