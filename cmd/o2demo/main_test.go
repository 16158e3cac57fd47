package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(args ...string) (string, error) {
	var buf bytes.Buffer
	err := newApp(&buf).Run(append([]string{"o2demo"}, args...))
	return buf.String(), err
}

func TestPingPong(t *testing.T) {
	should := require.New(t)

	out, err := run("pingpong", "--count", "500", "--report", "100")
	should.NoError(err)
	should.Contains(out, "service one received 0 messages")
	should.Contains(out, "service two received 200 messages")
	should.Contains(out, "exchanged 500 messages")
}

func TestClockMaster(t *testing.T) {
	should := require.New(t)

	out, err := run("clockmaster", "--duration", "120ms", "--period", "0.05", "--offset", "50")
	should.NoError(err)
	should.Contains(out, "clockmaster: local time")
	should.Contains(out, "reports")
}

func TestConfigFlag(t *testing.T) {
	should := require.New(t)

	path := filepath.Join(t.TempDir(), "sched.yaml")
	should.NoError(os.WriteFile(path, []byte("max_messages: 4\n"), 0o644))

	out, err := run("--config", path, "pingpong", "--count", "50")
	should.NoError(err)
	should.Contains(out, "exchanged 50 messages")

	should.NoError(os.WriteFile(path, []byte("slot_num: 3\n"), 0o644))
	_, err = run("--config", path, "pingpong")
	should.Error(err)
}
