/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/waltzrobotics/statebank/cmd/statebank/cmd"
)

func main() {
	cmd.Execute()
}
