package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalTableAlignsColumns(t *testing.T) {
	buf := &bytes.Buffer{}
	u := NewTerminalUIWithWriter(buf, false)

	u.Table(
		[]string{"Name", "Label"},
		[][]string{
			{"bitcoin-cash", "Bitcoin Cash"},
			{"ton", "TON"},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "┌──────────────┬──────────────┐", lines[0])
	assert.Equal(t, "│ Name         │ Label        │", lines[1])
	assert.Equal(t, "│ ton          │ TON          │", lines[4])
	assert.Equal(t, "└──────────────┴──────────────┘", lines[5])
}

func TestTerminalPlainOutputWithoutColors(t *testing.T) {
	buf := &bytes.Buffer{}
	u := NewTerminalUIWithWriter(buf, false)

	u.Info("https://etherscan.io/tx/%s", "0xabc")
	u.Warn("careful")
	u.Indent().Info("nested")
	u.KeyValue([][2]string{{"Network", "ethereum"}, {"EVM", u.Style(YesNo(true))}})

	assert.Equal(t,
		"https://etherscan.io/tx/0xabc\ncareful\n  nested\nNetwork  ethereum\nEVM      yes\n",
		buf.String())
}

func TestIndentedWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	u := NewTerminalUIWithWriter(buf, false).Indent()

	_, err := u.Writer().Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, "  a\n  b\n", buf.String())
}

func TestRecordingUI(t *testing.T) {
	r := NewRecordingUI()
	r.Info("link %d", 1)
	r.Warn("hint")
	r.Indent().Error("boom")
	r.Table([]string{"A", "B"}, [][]string{{"1", "2"}})

	assert.Equal(t, []string{"link 1"}, r.InfoMessages())
	assert.Equal(t, []string{"hint"}, r.WarnMessages())
	assert.Equal(t, []string{"boom"}, r.ErrorMessages())
	assert.Equal(t, []string{"1 | 2"}, r.TableRows())
	assert.True(t, r.HasMessage("BOOM"))
	assert.Equal(t, "no", r.Style(YesNo(false)))
}
