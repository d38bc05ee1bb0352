// cmd/stitch/main.go
package main

import (
	"pestitch/internal/app"
	"pestitch/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
