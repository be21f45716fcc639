package main

import (
	"github.com/lmbotha/lea/config"
	"github.com/lmbotha/lea/internal/app"
)

func main() {

	// create and initialize the app
	app, err := app.NewApp(config.CONFIG_PATH)
	if err != nil {
		panic(err)
	}

	// run the app
	// This will start the server and handle routes as defined in the app package.
	err = app.Run()
	if err != nil {
		panic(err)
	}
}
