package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"

	"github.com/gorilla/schema"
)

const (
	contentTypeJSON = "application/json"
)

var formEncoder = newFormEncoder()

func newFormEncoder() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.RegisterEncoder(float64(0), func(v reflect.Value) string {
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	})
	return enc
}

// body produces a request payload and its content type.
type body interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct {
	v any
}

func (b jsonBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("encode json body: %w", err)
	}
	return bytes.NewReader(data), contentTypeJSON, nil
}

// filePart attaches the local file at Path under form field Field.
type filePart struct {
	Field string
	Path  string
}

// multipartBody is a form: text fields from a schema-tagged struct plus
// optional extra fields and files.
type multipartBody struct {
	form  any
	extra url.Values
	files []filePart
}

func (b multipartBody) encode() (io.Reader, string, error) {
	fields := url.Values{}
	if b.form != nil {
		if err := formEncoder.Encode(b.form, fields); err != nil {
			return nil, "", fmt.Errorf("encode form: %w", err)
		}
	}
	for k, vs := range b.extra {
		fields[k] = append(fields[k], vs...)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range fields[k] {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", fmt.Errorf("write field %s: %w", k, err)
			}
		}
	}

	for _, f := range b.files {
		if f.Path == "" {
			continue
		}
		if err := attachFile(w, f); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func attachFile(w *multipart.Writer, f filePart) error {
	src, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer src.Close()

	dst, err := w.CreateFormFile(f.Field, filepath.Base(f.Path))
	if err != nil {
		return fmt.Errorf("create part %s: %w", f.Field, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy %s: %w", f.Path, err)
	}
	return nil
}
