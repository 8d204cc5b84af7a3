package main

import "github.com/pr-poehali-dev/major-registration-portal/internal/cli"

func main() {
	cli.Execute()
}
