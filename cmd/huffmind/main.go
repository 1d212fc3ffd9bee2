// Command huffmind serves the codec over HTTP, adapted from the teacher
// repository's cmd/main.go (kelbwah-huffmin) to the container format
// implemented by internal/container.
package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echoware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/huffmind/pycompress/internal/api"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	e := echo.New()
	e.Use(echoware.Logger())
	e.Use(echoware.Recover())
	e.Use(echoware.CORSWithConfig(echoware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	h := api.Handler{Log: log}
	e.POST("/compress", h.CompressFile)
	e.POST("/decompress", h.DecompressFile)

	if err := e.Start(":6969"); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
