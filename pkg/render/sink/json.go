package sink

import (
	"bytes"

	"github.com/matzehuels/stackdeck/pkg/deck"
	deckio "github.com/matzehuels/stackdeck/pkg/io"
)

// RenderJSON serializes d in the stackdeck JSON interchange format. The
// output can be read back with io.ReadJSON.
func RenderJSON(d *deck.Deck) ([]byte, error) {
	var buf bytes.Buffer
	if err := deckio.WriteJSON(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
