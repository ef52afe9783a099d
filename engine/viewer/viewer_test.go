package viewer

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandAppendsPath(t *testing.T) {
	l := New(`code --wait "--profile=Data Files"`, WithDir("/tmp"))
	cmd, err := l.Command("/shared/it_export_dataFile.ini")
	require.NoError(t, err)

	assert.Equal(t, []string{"code", "--wait", "--profile=Data Files", "/shared/it_export_dataFile.ini"}, cmd.Args)
	assert.Equal(t, "/tmp", cmd.Dir)
}

func TestOpenUsesStarter(t *testing.T) {
	var started *exec.Cmd
	l := New("notepad.exe", WithStarter(func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}))

	require.NoError(t, l.Open("data.ini"))
	require.NotNil(t, started)
	assert.Equal(t, []string{"notepad.exe", "data.ini"}, started.Args)
}

func TestOpenReportsStartFailure(t *testing.T) {
	boom := errors.New("boom")
	l := New("notepad.exe", WithStarter(func(*exec.Cmd) error { return boom }))
	assert.ErrorIs(t, l.Open("data.ini"), boom)
}

func TestOpenWithoutCommand(t *testing.T) {
	assert.ErrorIs(t, New("   ").Open("data.ini"), ErrNoCommand)
}

func TestOpenWithBrokenQuoting(t *testing.T) {
	assert.Error(t, New(`code "unterminated`).Open("data.ini"))
}
