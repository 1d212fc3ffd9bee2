// Package api exposes the codec over HTTP, adapted from the teacher
// repository's upload/download routes
// (kelbwah-huffmin/internal/routes/huffman.go) to front this container
// format instead of the teacher's header-only byte-frequency one.
package api

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/huffmind/pycompress/internal/driver"
)

// Handler wires a logger into the HTTP surface so every request's
// compress/extract operation logs the same structured events the CLI
// does.
type Handler struct {
	Log zerolog.Logger
}

// CompressFile handles POST /compress: accepts a multipart "file" field,
// compresses it, and streams back the container as an attachment.
func (h Handler) CompressFile(c echo.Context) error {
	return h.run(c, driver.ActionCompress, "compressed_", ".comp")
}

// DecompressFile handles POST /decompress: accepts a multipart "file"
// field holding a container, and streams back the restored text.
func (h Handler) DecompressFile(c echo.Context) error {
	return h.run(c, driver.ActionExtract, "decompressed_", "")
}

func (h Handler) run(c echo.Context, action driver.Action, filenamePrefix, outSuffix string) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot open uploaded file")
	}
	defer src.Close()

	tempInputPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	inFile, err := os.Create(tempInputPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create temp file")
	}
	defer os.Remove(tempInputPath)

	if _, err := io.Copy(inFile, src); err != nil {
		inFile.Close()
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to copy file data")
	}
	if err := inFile.Close(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to flush temp file")
	}

	resultSuffix := outSuffix
	if resultSuffix == "" {
		resultSuffix = ".out"
	}
	out := driver.OutputPath{
		Source: tempInputPath,
		Action: action,
		Dest:   tempInputPath + resultSuffix,
	}
	defer os.Remove(out.Dest)

	var opErr error
	if action == driver.ActionCompress {
		opErr = driver.Compress(h.Log, tempInputPath, out)
	} else {
		opErr = driver.Extract(h.Log, tempInputPath, out)
	}
	if opErr != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, action.String()+" failed")
	}

	resultBytes, err := os.ReadFile(out.Dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read result file")
	}

	downloadName := filenamePrefix + strings.TrimSuffix(file.Filename, ".comp")
	c.Response().Header().Set(echo.HeaderContentType, "application/octet-stream")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+downloadName+`"`)
	_, err = c.Response().Write(resultBytes)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to write response")
	}
	return nil
}
