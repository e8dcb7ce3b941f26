package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pylaunch/modes"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
		logger.With("a", 1).Info("with")
	})
	if !strings.Contains(buf.String(), `msg=test hello=world!`) {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `msg=with a=1`) {
		t.Fatalf("got %s", buf.String())
	}
}

func TestToJournalKey(t *testing.T) {
	if str := toJournalKey("logs.span"); str != "LOGS_SPAN" {
		t.Fatalf("got %s", str)
	}
}
