package main

import (
	"log"
	"os"

	"github.com/ytget/desktop-groups/internal/app"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.Printf("Desktop Groups v%s starting...", version)

	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
