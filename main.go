package main

import "github.com/mouse-blink/fretviz/cmd"

func main() {
	cmd.Execute()
}
