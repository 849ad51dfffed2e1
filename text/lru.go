// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"gioui.org/outline/f32"
	"gioui.org/outline/font"
)

// measureCache is a least recently used cache of text sizes.
type measureCache struct {
	m          map[measureKey]*measureElem
	head, tail *measureElem
}

type measureElem struct {
	next, prev *measureElem
	key        measureKey
	size       f32.Point
}

type measureKey struct {
	font          font.Font
	size          float32
	maxWidth      float32
	deviceMetrics bool
	str           string
}

const maxSize = 1000

func (c *measureCache) Get(k measureKey) (f32.Point, bool) {
	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.insert(e)
		return e.size, true
	}
	return f32.Point{}, false
}

func (c *measureCache) Put(k measureKey, sz f32.Point) {
	if c.m == nil {
		c.m = make(map[measureKey]*measureElem)
		c.head = new(measureElem)
		c.tail = new(measureElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	if e, ok := c.m[k]; ok {
		e.size = sz
		c.remove(e)
		c.insert(e)
		return
	}
	e := &measureElem{key: k, size: sz}
	c.m[k] = e
	c.insert(e)
	if len(c.m) > maxSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

// Len returns the number of cached sizes.
func (c *measureCache) Len() int {
	return len(c.m)
}

func (c *measureCache) remove(e *measureElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *measureCache) insert(e *measureElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
