package main

import (
	"context"
	"log"

	"github.com/englab/englab-calcs/pkg/api"
)

func main() {
	if err := api.Serve(context.Background()); err != nil {
		log.Fatal(err)
	}
}
