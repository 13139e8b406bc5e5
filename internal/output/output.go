// Package output renders backend responses for the command line.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatRaw  = "raw"
)

// Write renders a buffered response body in format.
func Write(w io.Writer, format string, body []byte) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	switch format {
	case FormatRaw:
		_, err := w.Write(body)
		return err
	case FormatYAML:
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			_, err = w.Write(body)
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err != nil {
			_, err = w.Write(body)
			return err
		}
		buf.WriteByte('\n')
		_, err := buf.WriteTo(w)
		return err
	}
}

// WriteValue renders an arbitrary value (e.g. journal records) in format.
func WriteValue(w io.Writer, format string, v any) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SaveExport streams a blob response into dir and returns the written path.
// The file name comes from Content-Disposition when present.
func SaveExport(dir, fallbackName string, resp httpclient.Response) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("response is nil")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	name := exportFileName(resp.Header().Get("Content-Disposition"), fallbackName)
	path := filepath.Join(dir, name)

	raw := resp.RawBody()
	defer raw.Close()

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if _, err := io.Copy(f, raw); err != nil {
		f.Close()
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}

func exportFileName(disposition, fallback string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := filepath.Base(strings.TrimSpace(params["filename"])); name != "" && name != "." && name != "/" {
				return name
			}
		}
	}
	return fmt.Sprintf("%s-%s.bin", fallback, time.Now().UTC().Format("20060102T150405Z"))
}
