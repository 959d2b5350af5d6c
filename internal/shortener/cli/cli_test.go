package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iurnickita/shortener-cli/internal/shortener/client"
	"github.com/iurnickita/shortener-cli/internal/shortener/model"
)

const testHost = "http://localhost:8080"

// fakeShortener - заглушка клиента. Ответы задаются по URL или strid
type fakeShortener struct {
	links map[string]client.Result[model.ShortLink]
	stats map[string]client.Result[model.Stats]
	calls []string
}

func (f *fakeShortener) Add(url string) (client.Result[model.ShortLink], error) {
	f.calls = append(f.calls, "add "+url)
	return f.link(url)
}

func (f *fakeShortener) AddWithID(url, strid string) (client.Result[model.ShortLink], error) {
	f.calls = append(f.calls, "add "+url+" "+strid)
	return f.link(url)
}

func (f *fakeShortener) link(url string) (client.Result[model.ShortLink], error) {
	res, ok := f.links[url]
	if !ok {
		return client.Result[model.ShortLink]{}, fmt.Errorf("%w: expected NUMID", client.ErrProtocol)
	}
	return res, nil
}

func (f *fakeShortener) Stats(strid string) (client.Result[model.Stats], error) {
	f.calls = append(f.calls, "stats "+strid)
	res, ok := f.stats[strid]
	if !ok {
		return client.Result[model.Stats]{}, fmt.Errorf("%w: expected CLICKS", client.ErrProtocol)
	}
	return res, nil
}

func (f *fakeShortener) BaseAddr() string {
	return testHost
}

func okLink(numid, strid string) client.Result[model.ShortLink] {
	return client.Result[model.ShortLink]{Kind: client.KindOK, Value: model.ShortLink{NumID: numid, StrID: strid}}
}

func TestCLI_SplitArg(t *testing.T) {
	tests := []struct {
		arg      string
		url      string
		strid    string
		hasStrID bool
	}{
		{arg: "http://example.com", url: "http://example.com"},
		{arg: "http://example.com/?q=a b", url: "http://example.com/?q=a b"},
		{arg: "http://example.com+mylink", url: "http://example.com", strid: "mylink", hasStrID: true},
		{arg: "http://example.com+a+b", url: "http://example.com", strid: "a+b", hasStrID: true},
		{arg: "http://example.com+", url: "http://example.com", strid: "", hasStrID: true},
		{arg: "+x", url: "", strid: "x", hasStrID: true},
	}

	for _, test := range tests {
		t.Run(test.arg, func(t *testing.T) {
			url, strid, hasStrID := SplitArg(test.arg)
			assert.Equal(t, test.url, url)
			assert.Equal(t, test.strid, strid)
			assert.Equal(t, test.hasStrID, hasStrID)
		})
	}
}

func TestCLI_Usage(t *testing.T) {
	f := &fakeShortener{}
	var out bytes.Buffer

	err := NewShell(f, &out, "shortener").Run(nil)
	require.NoError(t, err)
	assert.Empty(t, f.calls)
	assert.Contains(t, out.String(), "No arguments given")
	assert.Contains(t, out.String(), "shortener stats <urls>")
}

func TestCLI_Add(t *testing.T) {
	f := &fakeShortener{links: map[string]client.Result[model.ShortLink]{
		"http://example.com": okLink("42", "abc"),
		"http://example.org": okLink("43", "mylink"),
	}}
	var out bytes.Buffer

	err := NewShell(f, &out, "shortener").Run([]string{"http://example.com", "http://example.org+mylink"})
	require.NoError(t, err)
	assert.Equal(t, []string{"add http://example.com", "add http://example.org mylink"}, f.calls)
	assert.Equal(t,
		"http://example.com:\n  - "+testHost+"/abc\n  - "+testHost+"/.42\n"+
			"http://example.org:\n  - "+testHost+"/mylink\n  - "+testHost+"/.43\n",
		out.String())
}

func TestCLI_AddRejectedContinues(t *testing.T) {
	f := &fakeShortener{links: map[string]client.Result[model.ShortLink]{
		"http://a.b":         {Kind: client.KindRejected, Reason: client.ReasonTooShort},
		"http://example.com": {Kind: client.KindRejected, Reason: client.ReasonStridNotUnique},
		"http://example.org": okLink("1", "x"),
	}}
	var out bytes.Buffer

	err := NewShell(f, &out, "shortener").Run([]string{"http://a.b", "http://example.com+taken", "http://example.org"})
	require.NoError(t, err)
	assert.Len(t, f.calls, 3)
	assert.Contains(t, out.String(), "[!] http://a.b is too short")
	assert.Contains(t, out.String(), "[!] String ID `taken` already used")
	assert.Contains(t, out.String(), testHost+"/.1")
}

func TestCLI_AddInvalidStrIDContinues(t *testing.T) {
	f := &fakeShortener{links: map[string]client.Result[model.ShortLink]{
		"http://example.org": okLink("1", "x"),
	}}
	var out bytes.Buffer

	err := NewShell(f, &out, "shortener").Run([]string{"http://example.com+bad id", "http://example.com+a+b", "http://example.org"})
	require.NoError(t, err)
	assert.Equal(t, []string{"add http://example.org"}, f.calls)
	assert.Contains(t, out.String(), "String ID `bad id` invalid")
	assert.Contains(t, out.String(), "String ID `a+b` invalid")
	assert.Contains(t, out.String(), "underscores (_)")
}

func TestCLI_AddUnreachableStops(t *testing.T) {
	offline := client.Result[model.ShortLink]{Kind: client.KindUnreachable, Err: errors.New("connection refused")}
	f := &fakeShortener{links: map[string]client.Result[model.ShortLink]{
		"http://example.com": offline,
		"http://example.org": okLink("1", "x"),
	}}

	for _, args := range [][]string{
		{"http://example.com", "http://example.org"},
		{"http://example.com+mylink", "http://example.org"},
	} {
		f.calls = nil
		var out bytes.Buffer

		err := NewShell(f, &out, "shortener").Run(args)
		require.ErrorIs(t, err, ErrUnreachable)
		assert.Len(t, f.calls, 1)
		assert.Contains(t, out.String(), "[!] Offline or "+testHost+" unreachable")
	}
}

func TestCLI_AddProtocolViolationStops(t *testing.T) {
	f := &fakeShortener{links: map[string]client.Result[model.ShortLink]{
		"http://example.org": okLink("1", "x"),
	}}
	var out bytes.Buffer

	err := NewShell(f, &out, "shortener").Run([]string{"http://broken.example", "http://example.org"})
	require.ErrorIs(t, err, client.ErrProtocol)
	assert.Len(t, f.calls, 1)
}

func TestCLI_Stats(t *testing.T) {
	f := &fakeShortener{stats: map[string]client.Result[model.Stats]{
		"mylink":  {Kind: client.KindOK, Value: model.Stats{Clicks: 7, URL: "http://example.com"}},
		"missing": {Kind: client.KindRejected, Reason: client.ReasonNotFound},
	}}
	var out bytes.Buffer

	err := NewShell(f, &out, "shortener").Run([]string{"STATS", "missing", "bad/id", "mylink"})
	require.NoError(t, err)
	assert.Equal(t, []string{"stats missing", "stats mylink"}, f.calls)
	assert.Equal(t,
		"[!] "+testHost+"/missing not found\n"+
			"[!] String ID `bad/id` invalid. A String ID must only contain:\n"+
			"  - latin letters (A-Z and a-z)\n  - minuses (-)\n  - underscores (_)\n  - numbers (0-9)\n"+
			testHost+"/mylink:\n  - http://example.com\n  - 7 clicks\n",
		out.String())
}

func TestCLI_StatsUnreachableStops(t *testing.T) {
	f := &fakeShortener{stats: map[string]client.Result[model.Stats]{
		"a": {Kind: client.KindUnreachable, Err: errors.New("dial tcp: connection refused")},
		"b": {Kind: client.KindOK, Value: model.Stats{Clicks: 1, URL: "http://example.com"}},
	}}
	var out bytes.Buffer

	err := NewShell(f, &out, "shortener").Run([]string{"stats", "a", "b"})
	require.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, []string{"stats a"}, f.calls)
}
