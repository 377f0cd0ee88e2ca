package domain

import (
	"encoding/base64"
	"fmt"
)

// ImageRef is a generated image held in memory.
type ImageRef struct {
	MIMEType string
	Data     []byte
}

// DataURI encodes the image as data:<mime>;base64,<payload>.
func (i ImageRef) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", i.MIMEType, base64.StdEncoding.EncodeToString(i.Data))
}
