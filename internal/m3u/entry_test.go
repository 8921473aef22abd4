package m3u

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name: "single entry",
			input: "#EXTM3U\n" +
				"#EXTINF:-1 tvg-id=\"KTV.in\",KTV HD\n" +
				"http://example/ktv\n",
			want: []Entry{{TvgID: "KTV.in", Name: "KTV HD", URL: "http://example/ktv"}},
		},
		{
			name: "keeps first occurrence of a tvg-id",
			input: "#EXTINF:-1 tvg-id=\"SunTV.in\",Sun TV\n" +
				"http://example/sun1\n" +
				"#EXTINF:-1 tvg-id=\"SunTV.in\",Sun TV Backup\n" +
				"http://example/sun2\n" +
				"#EXTINF:-1 tvg-id=\"SunTV.in\",Sun TV Third\n" +
				"http://example/sun3\n",
			want: []Entry{{TvgID: "SunTV.in", Name: "Sun TV", URL: "http://example/sun1"}},
		},
		{
			name: "entries without tvg-id collapse to one",
			input: "#EXTINF:-1,First\n" +
				"http://example/1\n" +
				"#EXTINF:-1 tvg-logo=\"x.png\",Second\n" +
				"http://example/2\n",
			want: []Entry{{TvgID: "", Name: "First", URL: "http://example/1"}},
		},
		{
			name: "skips comments and blank lines between metadata and url",
			input: "#EXTINF:-1 tvg-id=\"A.in\",A\n" +
				"\n" +
				"#EXTVLCOPT:http-user-agent=foo\n" +
				"http://example/a\n",
			want: []Entry{{TvgID: "A.in", Name: "A", URL: "http://example/a"}},
		},
		{
			name: "ignores url without pending metadata",
			input: "http://example/orphan\n" +
				"#EXTINF:-1 tvg-id=\"B.in\",B\n" +
				"http://example/b\n" +
				"http://example/orphan2\n",
			want: []Entry{{TvgID: "B.in", Name: "B", URL: "http://example/b"}},
		},
		{
			name: "discards metadata with no url at end of input",
			input: "#EXTINF:-1 tvg-id=\"C.in\",C\n" +
				"http://example/c\n" +
				"#EXTINF:-1 tvg-id=\"D.in\",D\n",
			want: []Entry{{TvgID: "C.in", Name: "C", URL: "http://example/c"}},
		},
		{
			name: "later metadata replaces pending metadata",
			input: "#EXTINF:-1 tvg-id=\"E.in\",E\n" +
				"#EXTINF:-1 tvg-id=\"F.in\",F\n" +
				"http://example/f\n",
			want: []Entry{{TvgID: "F.in", Name: "F", URL: "http://example/f"}},
		},
		{
			name: "display name is the text after the last comma",
			input: "#EXTINF:-1 tvg-id=\"G.in\" group-title=\"News,Regional\", G News \n" +
				"http://example/g\n",
			want: []Entry{{TvgID: "G.in", Name: "G News", URL: "http://example/g"}},
		},
		{
			name:  "handles CRLF line endings",
			input: "#EXTM3U\r\n#EXTINF:-1 tvg-id=\"H.in\",H\r\nhttp://example/h\r\n",
			want:  []Entry{{TvgID: "H.in", Name: "H", URL: "http://example/h"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestParse_LongLines(t *testing.T) {
	junk := "#EXTINF:-1 tvg-id=\"Junk.in\" tvg-logo=\"" + strings.Repeat("x", 2*1024*1024) + "\",Junk"
	input := "#EXTM3U\n" +
		"#EXTINF:-1 tvg-id=\"KTV.in\",KTV\n" +
		"http://example/ktv\n" +
		junk + "\n" +
		"http://example/junk\n" +
		"#EXTINF:-1 tvg-id=\"Last.in\",Last\n" +
		"http://example/last"

	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []Entry{
		{TvgID: "KTV.in", Name: "KTV", URL: "http://example/ktv"},
		{TvgID: "Junk.in", Name: "Junk", URL: "http://example/junk"},
		{TvgID: "Last.in", Name: "Last", URL: "http://example/last"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ReaderError(t *testing.T) {
	_, err := Parse(failingReader{})
	if err == nil {
		t.Fatal("expected error from failing reader")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected wrapped reader error, got %v", err)
	}
}
