package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
)

type upload struct {
	file        multipart.File
	name        string
	contentType string
	size        int64
}

func (u *upload) Close() error {
	if u == nil {
		return nil
	}
	return u.file.Close()
}

// formUpload opens the multipart file under field. It returns nil when the
// request carries no such file.
func formUpload(c *gin.Context, field string) (*upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &upload{
		file:        f,
		name:        fh.Filename,
		contentType: contentType,
		size:        fh.Size,
	}, nil
}

// formPhones reads the signer phones in order from phones[], phones or a
// single phone field. A lone phones value holding a JSON array is expanded.
func formPhones(c *gin.Context) []string {
	if phones := c.PostFormArray("phones[]"); len(phones) > 0 {
		return phones
	}

	phones := c.PostFormArray("phones")
	if len(phones) == 1 && strings.HasPrefix(strings.TrimSpace(phones[0]), "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(phones[0]), &decoded); err == nil {
			return decoded
		}
	}
	if len(phones) > 0 {
		return phones
	}

	if phone := c.PostForm("phone"); phone != "" {
		return []string{phone}
	}
	return nil
}
