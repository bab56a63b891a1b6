package main

import "github.com/peetj/lcd-character-creator/cmd"

func main() {
	cmd.Execute()
}
