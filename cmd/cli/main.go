package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/peercolab/internal/cli"
	"github.com/dmitrijs2005/peercolab/internal/flagx"
	"github.com/dmitrijs2005/peercolab/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, os.Stdout)

	if err != nil {
		log.Fatalf("%v", err)
	}

	err = app.Run(ctx, flagx.Positional(os.Args[1:], config.ValueFlags()))
	_ = app.Close()

	if err != nil {
		log.Fatalf("%v", err)
	}

}
