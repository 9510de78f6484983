// Package main - точка входа CLI estimate.
package main

import (
	"os"

	"github.com/house-price-service/cmd/estimate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
