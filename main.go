package main

import (
	"os"

	"github.com/QUAKO-CLOUDY/SeekEatz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
