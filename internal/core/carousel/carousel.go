// Package carousel paginates an immutable event list two at a time with
// wraparound indexing and directional stepping. It is independent of how the
// list was obtained.
package carousel

import "github.com/vibescout/vibescout/internal/core"

// Direction records which way the carousel last stepped.
type Direction int

const (
	Right Direction = iota
	Left
)

// Carousel presents a fixed list of events in pairs. The zero value over an
// empty list is valid and inert.
type Carousel struct {
	events    []core.GeneratedEvent
	start     int
	direction Direction
}

// New copies the list so later mutations by the caller cannot shift indices
// mid-session.
func New(events []core.GeneratedEvent) *Carousel {
	copied := make([]core.GeneratedEvent, len(events))
	copy(copied, events)
	return &Carousel{events: copied}
}

// Len returns the number of events in the carousel.
func (c *Carousel) Len() int {
	return len(c.events)
}

// StartIndex returns the index of the first visible item.
func (c *Carousel) StartIndex() int {
	return c.start
}

// Direction returns the last stepping direction.
func (c *Carousel) Direction() Direction {
	return c.direction
}

// Next advances by one pair, wrapping past the end. No-op when everything
// already fits on one page.
func (c *Carousel) Next() {
	if len(c.events) <= 2 {
		return
	}
	c.start = (c.start + 2) % len(c.events)
	c.direction = Right
}

// Previous steps back by one pair. A negative index wraps by adding the list
// length; when the length is even and the wrapped index lands odd, one more
// step back keeps the pairs aligned.
func (c *Carousel) Previous() {
	length := len(c.events)
	if length <= 2 {
		return
	}

	c.start -= 2
	if c.start < 0 {
		c.start += length
		if length%2 == 0 && c.start%2 == 1 {
			c.start--
		}
	}
	c.direction = Left
}

// Visible returns the current pair. A single-item list yields one event; an
// empty list yields none.
func (c *Carousel) Visible() []core.GeneratedEvent {
	length := len(c.events)
	switch {
	case length == 0:
		return nil
	case length == 1:
		return []core.GeneratedEvent{c.events[0]}
	default:
		return []core.GeneratedEvent{
			c.events[c.start],
			c.events[(c.start+1)%length],
		}
	}
}

// PageCount returns the number of page-indicator dots: ceil(len/2).
func (c *Carousel) PageCount() int {
	return (len(c.events) + 1) / 2
}

// ActivePage maps the start index onto its indicator.
func (c *Carousel) ActivePage() int {
	return c.start / 2
}

// JumpToPage moves directly to an indicator. The target is clamped so the
// last page never starts beyond len-2.
func (c *Carousel) JumpToPage(page int) {
	length := len(c.events)
	if length <= 2 {
		return
	}
	if page < 0 {
		page = 0
	}

	start := page * 2
	if start > length-2 {
		start = length - 2
	}

	if start >= c.start {
		c.direction = Right
	} else {
		c.direction = Left
	}
	c.start = start
}
