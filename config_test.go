package o2sched_test

import (
	"testing"
	"time"

	"github.com/hyperjiang/o2sched"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	should := require.New(t)
	fs := afero.NewMemMapFs()

	should.NoError(afero.WriteFile(fs, "/etc/o2/sched.yaml", []byte(`
slot_num: 256
poll_interval: 5ms
message_size: 512
max_messages: 64
max_message_size: 4096
`), 0o644))

	cfg, err := o2sched.LoadConfig(fs, "/etc/o2/sched.yaml")
	should.NoError(err)
	should.Equal(o2sched.Config{
		SlotNum:        256,
		PollInterval:   5 * time.Millisecond,
		MessageSize:    512,
		MaxMessages:    64,
		MaxMessageSize: 4096,
	}, cfg)

	c := o2sched.New(cfg.Options()...)
	should.Equal(256, c.SlotNum)
	should.Equal(5*time.Millisecond, c.PollInterval)

	ref, err := c.Pool.Alloc()
	should.NoError(err)
	should.Equal(512, c.Pool.Get(ref).Cap())
	_, err = c.Pool.AllocSize(8192)
	should.ErrorIs(err, o2sched.ErrMessageTooLarge)
}

func TestLoadConfigDefaults(t *testing.T) {
	should := require.New(t)
	fs := afero.NewMemMapFs()
	should.NoError(afero.WriteFile(fs, "empty.yaml", []byte("verbose: false\n"), 0o644))

	cfg, err := o2sched.LoadConfig(fs, "empty.yaml")
	should.NoError(err)

	c := o2sched.New(cfg.Options()...)
	should.Equal(128, c.SlotNum)
	should.Equal(10*time.Millisecond, c.PollInterval)
	should.Equal(o2sched.DefaultMessageSize, c.MessageSize)
}

func TestLoadConfigErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "bad-slots.yaml", []byte("slot_num: 100\n"), 0o644)
	_ = afero.WriteFile(fs, "too-small.yaml", []byte("slot_num: 64\n"), 0o644)
	_ = afero.WriteFile(fs, "sizes.yaml", []byte("message_size: 1024\nmax_message_size: 512\n"), 0o644)
	_ = afero.WriteFile(fs, "garbage.yaml", []byte("slot_num: [1, 2\n"), 0o644)

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"not a power of two", "bad-slots.yaml", true},
		{"shorter than the dispatch step", "too-small.yaml", true},
		{"default above max", "sizes.yaml", true},
		{"malformed yaml", "garbage.yaml", false},
		{"missing file", "nope.yaml", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			should := require.New(t)
			_, err := o2sched.LoadConfig(fs, tt.path)
			should.Error(err)
			if tt.invalid {
				should.ErrorIs(err, o2sched.ErrInvalidConfig)
			}
		})
	}
}
