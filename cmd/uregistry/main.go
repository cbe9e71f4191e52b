package main

import (
	"github.com/stephenlacy/unrealmodding/cmd/uregistry/cmd"
)

func main() {
	cmd.Execute()
}
