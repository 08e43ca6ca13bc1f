// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for all audio encoders
package encode

import (
	"io"

	"github.com/harperreed/earfilter-go/pkg/audio"
)

// Encoder writes a mono buffer in an encoded format
type Encoder interface {
	// Encode writes buf to w
	Encode(w io.Writer, buf audio.Buffer) error
}
