package m3u

import (
	"fmt"
	"io"
)

type Encoder struct {
	items []*Channel
}

func NewEncoder() *Encoder {
	return &Encoder{items: []*Channel{}}
}

func (e *Encoder) AddChannel(item *Channel) {
	e.items = append(e.items, item)
}

// Len returns the number of channels added so far.
func (e *Encoder) Len() int {
	return len(e.items)
}

func (e *Encoder) Encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", headerTag); err != nil {
		return err
	}

	for _, item := range e.items {
		if err := item.encode(w); err != nil {
			return err
		}
	}

	return nil
}
