package main

import "github.com/virgilvox/launchcue-sub001/cmd/cuectl/cmd"

func main() {
	cmd.Execute()
}
