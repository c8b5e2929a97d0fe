package main

import "github.com/kozaktomas/glow-scan/cmd"

func main() {
	cmd.Execute()
}
