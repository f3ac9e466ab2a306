package main

import "github.com/mouse-blink/scopegate/cmd"

func main() {
	cmd.Execute()
}
