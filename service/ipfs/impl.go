package ipfs

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/bitwhips/washapi/base/ctx"
	"github.com/bitwhips/washapi/base/log"
	"github.com/bitwhips/washapi/domain"
)

type impl struct {
	shell      *ipfsapi.Shell
	gateway    string
	ctxTimeout time.Duration
}

// New builds a ContentStore backed by an ipfs node api.
// Published uris are rooted at `gateway`, e.g. https://ipfs.io/ipfs
func New(s *ipfsapi.Shell, gateway string, timeout time.Duration) domain.ContentStore {
	return &impl{shell: s, gateway: strings.TrimRight(gateway, "/"), ctxTimeout: timeout}
}

func (im *impl) Put(c ctx.Ctx, data []byte, contentType string) (string, error) {
	detected := mimetype.Detect(data)
	if contentType != "" && !mimetype.EqualsAny(contentType, ContentTypePng, ContentTypeJson) {
		c.WithField("contentType", contentType).Error("unsupported content type")
		return "", ErrUnsupportedContent
	}
	if contentType == ContentTypePng && !detected.Is(ContentTypePng) {
		c.WithFields(log.Fields{
			"contentType": contentType,
			"detected":    detected.String(),
		}).Error("content does not match declared type")
		return "", ErrUnsupportedContent
	}

	cctx, cancel := ctx.WithTimeout(c, im.ctxTimeout)
	defer cancel()

	cid, err := im.shell.Add(bytes.NewReader(data), ipfsapi.Pin(true))
	if err != nil {
		cctx.WithField("err", err).Error("shell.Add failed")
		return "", err
	}

	return fmt.Sprintf("%s/%s", im.gateway, cid), nil
}
