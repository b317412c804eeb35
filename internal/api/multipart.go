package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"sort"
)

// File is an in-memory upload part.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileFromHeader reads an uploaded file of an incoming multipart form.
func FileFromHeader(fh *multipart.FileHeader) (File, error) {
	f, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// Multipart is a multipart/form-data request body.
type Multipart struct {
	Fields url.Values
	Files  map[string][]File
}

func NewMultipart(fields url.Values) *Multipart {
	if fields == nil {
		fields = url.Values{}
	}
	return &Multipart{Fields: fields, Files: map[string][]File{}}
}

func (m *Multipart) AddFile(field string, files ...File) {
	m.Files[field] = append(m.Files[field], files...)
}

// encode renders fields in key order, then files, so the body is stable
// across retries.
func (m *Multipart) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range m.Fields[k] {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", err
			}
		}
	}

	fileKeys := make([]string, 0, len(m.Files))
	for k := range m.Files {
		fileKeys = append(fileKeys, k)
	}
	sort.Strings(fileKeys)
	for _, k := range fileKeys {
		for _, f := range m.Files[k] {
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, k, f.Name))
			ct := f.ContentType
			if ct == "" {
				ct = "application/octet-stream"
			}
			h.Set("Content-Type", ct)
			part, err := w.CreatePart(h)
			if err != nil {
				return nil, "", err
			}
			if _, err := part.Write(f.Data); err != nil {
				return nil, "", err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
