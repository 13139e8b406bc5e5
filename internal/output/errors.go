package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

const maxHTMLBodyBytes = 1 << 20 // 1 MiB

// DescribeError turns a failed call into a one-line message. Gateway HTML
// pages are reduced to their title; backend envelopes to their message.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}
	var se *httpclient.StatusError
	if !errors.As(err, &se) {
		return err.Error()
	}
	if msg := envelopeMessage(se.Snippet); msg != "" {
		return se.Method + " " + se.Path + ": " + msg
	}
	if title := htmlTitle([]byte(se.Snippet)); title != "" {
		return se.Method + " " + se.Path + ": " + title
	}
	return se.Error()
}

func envelopeMessage(snippet string) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(snippet), &env); err != nil {
		return ""
	}
	return strings.TrimSpace(env.Message)
}

func htmlTitle(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '<' {
		return ""
	}
	if len(trimmed) > maxHTMLBodyBytes {
		trimmed = trimmed[:maxHTMLBodyBytes]
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(trimmed))
	if err != nil {
		return ""
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
