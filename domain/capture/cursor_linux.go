//go:build linux

package capture

import (
	"fmt"
	"image"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// x11Cursor queries the pointer on the default screen's root window.
// The connection is opened on first use and reused.
type x11Cursor struct {
	mu   sync.Mutex
	conn *xgb.Conn
	root xproto.Window
}

func newCursorSource() cursorSource { return &x11Cursor{} }

func (c *x11Cursor) Position() (image.Point, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		conn, err := xgb.NewConn()
		if err != nil {
			return image.Point{}, fmt.Errorf("capture: x11 connect: %w", err)
		}
		c.conn = conn
		c.root = xproto.Setup(conn).DefaultScreen(conn).Root
	}
	reply, err := xproto.QueryPointer(c.conn, c.root).Reply()
	if err != nil {
		return image.Point{}, fmt.Errorf("capture: query pointer: %w", err)
	}
	return image.Pt(int(reply.RootX), int(reply.RootY)), nil
}

func (c *x11Cursor) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	return nil
}
