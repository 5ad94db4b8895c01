package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareMaze = "S..\n...\n..E\n"

// writeMaze stores text in a temp file and returns its path.
func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	return path
}

func TestRun_File(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-input", writeMaze(t, squareMaze), "-render"}, nil, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "1004\n5\nSOO\n..O\n..E\n", out.String())
	assert.Contains(t, errOut.String(), "solved")
}

func TestRun_Stdin(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-early-exit", "-log-level", "error"}, strings.NewReader("#####\n#S.E#\n#####\n"), &out, &errOut)
	require.Equal(t, 0, code)
	assert.Equal(t, "2\n3\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_EnvDefaults(t *testing.T) {
	t.Setenv(envInput, writeMaze(t, squareMaze))
	t.Setenv(envTurnCost, "1")
	t.Setenv(envLogLevel, "warn")

	var out, errOut bytes.Buffer
	code := run(nil, nil, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "4\n9\n", out.String())
}

func TestRun_FlagOverridesEnv(t *testing.T) {
	t.Setenv(envTurnCost, "1")

	var out, errOut bytes.Buffer
	code := run([]string{"-input", writeMaze(t, squareMaze), "-turn", "1001"}, nil, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "1004\n5\n", out.String())
}

func TestRun_Failures(t *testing.T) {
	cases := []struct {
		name string
		args []string
		env  map[string]string
		code int
		msg  string
	}{
		{"Malformed", []string{"-input", writeMaze(t, "S.S\n..E\n")}, nil, 1, "malformed input"},
		{"Unreachable", []string{"-input", writeMaze(t, "#######\n#S..#E#\n#######\n")}, nil, 1, "unreachable"},
		{"MissingFile", []string{"-input", filepath.Join(t.TempDir(), "nope.txt")}, nil, 1, "read maze"},
		{"BadTurnCost", []string{"-input", writeMaze(t, squareMaze), "-turn", "0"}, nil, 1, "invalid option"},
		{"BadFlag", []string{"-bogus"}, nil, 2, "bogus"},
		{"BadEnvInt", nil, map[string]string{envStepCost: "one"}, 2, envStepCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			var out, errOut bytes.Buffer
			code := run(tc.args, strings.NewReader(""), &out, &errOut)
			assert.Equal(t, tc.code, code)
			assert.Contains(t, errOut.String(), tc.msg)
			assert.Empty(t, out.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("Debug").String())
	assert.Equal(t, "WARN", parseLevel(" warn ").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("whatever").String())
}
