package main

import (
	"log"
	"net/http"

	"calculator-frontend/internal/config"
	"calculator-frontend/internal/stubapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	r := stubapi.NewRouter(stubapi.NewStore())

	log.Printf("Stub calculator API starting on port %s", cfg.StubAPIPort)
	if err := http.ListenAndServe(":"+cfg.StubAPIPort, r); err != nil {
		log.Fatal(err)
	}
}
