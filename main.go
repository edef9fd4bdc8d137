package main

import (
	"log"

	"github.com/BRAVO68WEB/demoapp/cmd/demoapp"
)

func main() {
	if err := demoapp.Execute(); err != nil {
		log.Fatal(err)
	}
}
