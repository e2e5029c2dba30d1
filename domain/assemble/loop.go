package assemble

import (
	"bytes"
	"fmt"
)

// netscapeLoopForever is the application extension that marks a GIF as
// looping forever (iteration count 0).
var netscapeLoopForever = []byte{
	0x21, 0xFF, 0x0B,
	'N', 'E', 'T', 'S', 'C', 'A', 'P', 'E', '2', '.', '0',
	0x03, 0x01, 0x00, 0x00,
	0x00,
}

// withLoopExtension returns an encoded GIF that carries the loop-forever
// extension. image/gif only writes it for more than one frame, so a
// single-frame file gets it inserted after the global color table.
func withLoopExtension(b []byte) ([]byte, error) {
	const headerLen = 6 + 7 // signature+version, logical screen descriptor
	if len(b) < headerLen || !bytes.HasPrefix(b, []byte("GIF8")) {
		return nil, fmt.Errorf("not a gif stream (%d bytes)", len(b))
	}
	at := headerLen
	if flags := b[10]; flags&0x80 != 0 {
		at += 3 << ((flags & 0x07) + 1)
	}
	if at > len(b) {
		return nil, fmt.Errorf("truncated global color table")
	}
	if bytes.HasPrefix(b[at:], netscapeLoopForever[:14]) {
		return b, nil
	}
	out := make([]byte, 0, len(b)+len(netscapeLoopForever))
	out = append(out, b[:at]...)
	out = append(out, netscapeLoopForever...)
	return append(out, b[at:]...), nil
}
