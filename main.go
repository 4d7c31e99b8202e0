package main

import "awsctx/cmd"

func main() {
	cmd.Execute()
}
