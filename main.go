package main

import "github.com/Sugamrai0/AIML/cmd"

func main() {
	cmd.Execute()
}
