package main

import "github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/cli"

func main() {
	cli.Execute()
}
