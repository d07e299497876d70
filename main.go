package main

import "github.com/meghashyamc/gridtimer/cmd"

func main() {
	cmd.Execute()
}
