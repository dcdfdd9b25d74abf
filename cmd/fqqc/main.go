// cmd/fqqc/main.go
package main

import (
	"fqqc/internal/app"
	"fqqc/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
