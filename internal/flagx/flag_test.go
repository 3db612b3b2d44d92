package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-d", "peercolab.db"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-d", "peercolab.db"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"seed", "-x", "1", "--y=2"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash-prefixed token is not a value",
			args:         []string{"-c", "-d", "x.db"},
			allowedFlags: []string{"-c", "-d"},
			want:         []string{"-c", "-d", "x.db"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "/path/short.json"}
	assert.Equal(t, "/path/short.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-config", "/path/long.json"}
	assert.Equal(t, "/path/long.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-x", "1"}
	assert.Empty(t, JsonConfigFlags())

	os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
	assert.Equal(t, "/path/2.json", JsonConfigFlags())
}

func TestPositional(t *testing.T) {
	valueFlags := []string{"-c", "-d", "-l"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "command after flags",
			args: []string{"-d", "x.db", "register", "u@x.com", "Ann", "Lee"},
			want: []string{"register", "u@x.com", "Ann", "Lee"},
		},
		{
			name: "equals form and command switch",
			args: []string{"register", "--teacher", "-c=conf.json", "u@x.com"},
			want: []string{"register", "--teacher", "u@x.com"},
		},
		{
			name: "value flag followed by another flag",
			args: []string{"-l", "-d", "x.db", "seed"},
			want: []string{"seed"},
		},
		{
			name: "nothing",
			args: nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positional(tt.args, valueFlags))
		})
	}
}
