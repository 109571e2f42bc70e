package main

import (
	"github.com/mj1618/kodi-search/cmd"

	_ "github.com/mj1618/kodi-search/internal/platform/kodi"
)

func main() {
	cmd.Execute()
}
