package ipfs

import (
	"errors"
)

var (
	ErrUnsupportedContent = errors.New("unsupported content type")
)

// content types the wash pipeline publishes
const (
	ContentTypePng  = "image/png"
	ContentTypeJson = "application/json"
)
