package main

import "github.com/nomasters/otp/cmd/otp/cmd"

func main() {
	cmd.Execute()
}
