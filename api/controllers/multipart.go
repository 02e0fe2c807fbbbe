package controllers

import (
	"io"
	"net/http"

	pkgerrors "github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
)

const maxMultipartMemory = 10 << 20 // 10 MiB

// readMultipart collects form values and the optional image upload for
// pass-through to the upstream store.
func readMultipart(r *http.Request, fileField string) ([]flora.FormField, *flora.FormFile, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form")
	}

	var fields []flora.FormField
	for name, values := range r.MultipartForm.Value {
		for _, value := range values {
			fields = append(fields, flora.FormField{Name: name, Value: value})
		}
	}

	headers := r.MultipartForm.File[fileField]
	if len(headers) == 0 {
		return fields, nil, nil
	}

	f, err := headers[0].Open()
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unreadable file upload")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unreadable file upload")
	}

	return fields, &flora.FormFile{
		Field:    fileField,
		Filename: headers[0].Filename,
		Content:  content,
	}, nil
}
