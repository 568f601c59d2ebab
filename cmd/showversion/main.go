package main

import "github.com/oshokin/showversion/cmd/showversion/cmd"

func main() {
	cmd.Execute()
}
