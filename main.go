package main

import "github.com/mmuldo/dgcolor/cmd"

func main() {
	cmd.Execute()
}
