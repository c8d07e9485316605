package main

import "tambourine/cmd/tambourine/cmd"

// @title Tambourine Config API
// @version 1.0
// @description Publishes the default prompt sections and the providers available to the dictation client.
// @BasePath /api

//go:generate swag init -g main.go -d ./,../../internal/api -o ../../docs
func main() {
	cmd.Execute()
}
