package main

import (
	"github.com/reelswipe/core/internal/app"
	"github.com/reelswipe/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
