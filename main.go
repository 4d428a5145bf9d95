package main

import (
	"os"

	"github.com/PolarWolf314/riddlechain/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
