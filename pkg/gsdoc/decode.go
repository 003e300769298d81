package gsdoc

import (
	"github.com/avnlabs/gsgraph/pkg/adf"
	"github.com/avnlabs/gsgraph/pkg/gs"
	"github.com/avnlabs/gsgraph/pkg/gserrors"
)

// DecodeContainer runs the full pipeline — ADF container parsing, payload
// selection, GraphScript decoding, and Document assembly — over a single
// contiguous buffer. It returns the typed error the ADF reader produces
// (BadMagic, UnsupportedVersion, Truncated), or NoInstance when the
// instance directory is empty; everything
// past container parsing degrades to recoverable or cosmetic fallbacks
// instead of failing.
func DecodeContainer(buf []byte) (Document, error) {
	container, err := adf.Parse(buf)
	if err != nil {
		return Document{}, err
	}

	inst, ok := container.FirstInstance()
	if !ok {
		return Document{}, gserrors.NoInstance()
	}

	payload := container.Payload(inst)
	graph := gs.Decode(payload, container.Order)
	return Build(graph, container.Order, DefaultRoles()), nil
}
