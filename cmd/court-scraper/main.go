package main

import (
	"github.com/shivaraj-arch/court-scraper/internal/cli"
)

func main() {
	cli.Execute()
}
