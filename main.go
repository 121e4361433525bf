package main

import "skidoodle/spotify-badge/cmd"

func main() {
	cmd.Execute()
}
