package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
	"github.com/samvad-hq/interaction-admin/pkg/interaction"
)

type callFlags struct {
	operation string
	id        string
	subID     string
	ids       []string
	params    map[string]string
	fields    map[string]string
	bodyFile  string
	file      string
	reason    string
}

// args converts command line flags into operation arguments. The returned
// func releases the attachment, if any.
func (f callFlags) args(stdin io.Reader) (interaction.Args, func(), error) {
	args := interaction.Args{
		ID:     f.id,
		SubID:  f.subID,
		IDs:    f.ids,
		Reason: f.reason,
		Fields: f.fields,
	}
	if len(f.params) > 0 {
		args.Params = toParams(f.params)
	}

	if f.bodyFile != "" {
		body, err := readBody(f.bodyFile, stdin)
		if err != nil {
			return interaction.Args{}, nil, err
		}
		args.Body = body
	}

	closeFn := func() {}
	if f.file != "" {
		fh, err := os.Open(f.file)
		if err != nil {
			return interaction.Args{}, nil, fmt.Errorf("open attachment: %w", err)
		}
		args.File = &httpclient.FilePart{
			Field:    interaction.AttachmentField,
			FileName: filepath.Base(f.file),
			Reader:   fh,
		}
		closeFn = func() { _ = fh.Close() }
	}
	return args, closeFn, nil
}

func toParams(m map[string]string) interaction.Params {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	params := url.Values{}
	for _, k := range keys {
		params.Set(k, m[k])
	}
	return params
}

func readBody(path string, stdin io.Reader) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("body %s is not valid JSON", path)
	}
	return json.RawMessage(data), nil
}
