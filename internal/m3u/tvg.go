package m3u

import (
	"fmt"
	"io"
)

// TVGTags holds the attributes written on every #EXTINF line. All of them are
// always emitted, in this order, even when empty.
type TVGTags struct {
	ID         string
	Name       string
	Language   string
	Type       string
	GroupTitle string
}

func (t TVGTags) encode(w io.Writer) error {
	_, err := fmt.Fprintf(w, `tvg-id="%s" tvg-name="%s" tvg-language="%s" tvg-type="%s" group-title="%s"`,
		t.ID, t.Name, t.Language, t.Type, t.GroupTitle)
	return err
}
