package main

import "github.com/mouse-blink/hoppit/cmd"

func main() {
	cmd.Execute()
}
