package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/go-theft-craft/decorator/internal/assets"
)

// Downloads an asset pack (JSON descriptors plus NBT templates) into a
// local directory, from any go-getter source: a git repository
// subdirectory, an http archive or a local path.
func main() {
	var (
		src = flag.String("src", "", "asset pack source url (go-getter syntax)")
		out = flag.String("o", "./assets", "output dir path")
	)
	flag.Parse()

	if *src == "" {
		log.Fatal("asset pack source required")
	}
	if *out == "" {
		log.Fatal("output dir path required")
	}

	if err := os.RemoveAll(*out); err != nil {
		log.Fatal(err)
	}

	log.Printf("start downloading assets to %s", *out)

	if err := assets.Fetch(context.Background(), *src, *out); err != nil {
		log.Fatal(err)
	}

	log.Printf("done downloading assets to %s", *out)
}
