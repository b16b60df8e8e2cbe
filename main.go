// @title        Portfolio API
// @version      1.0
// @description  Portfolio site backend: resume chat relay and project data.
// @BasePath     /

//go:generate swag init -g main.go -o docs --parseInternal --outputTypes go
package main

import (
	"os"

	"portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
