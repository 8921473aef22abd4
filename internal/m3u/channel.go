package m3u

import (
	"fmt"
	"io"
)

// Channel is one curated entry written by the Encoder.
type Channel struct {
	Title    string
	URI      string
	Duration float64
	TVGTags  TVGTags
}

func (c *Channel) encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s%0.0f ", extinfTag, c.Duration); err != nil {
		return err
	}

	if err := c.TVGTags.encode(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, ",%s\n%s\n", c.Title, c.URI); err != nil {
		return err
	}

	return nil
}
