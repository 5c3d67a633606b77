package main

import (
	"log"

	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/cmd/godzilla/app"
)

func main() {
	err := app.New().Execute()
	if err != nil {
		log.Fatal(err)
	}
}
