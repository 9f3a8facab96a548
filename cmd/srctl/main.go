package main

import (
	"os"

	"sr/internal/srctl"
)

func main() { os.Exit(srctl.Main()) }
