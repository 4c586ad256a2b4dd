package main

import (
	"log"

	"github.com/QueryGate/pdp-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
