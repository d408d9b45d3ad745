package main

import (
	"fmt"
	"os"

	"github.com/example/hotelres/internal/cli"
	"github.com/example/hotelres/internal/wire"
)

func main() {
	err := cli.RootCmd().Execute()
	_ = wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
