package main

import "github.com/Tiliavir/hyprkit/cmd"

func main() {
	cmd.Execute()
}
