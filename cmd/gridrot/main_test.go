package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sw965/blockgrid/mathx"
	"github.com/sw965/blockgrid/matrix/2d"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr error
	}{
		{
			name:  "正常_既定の1回転",
			stdin: "[[1,2],[3,4]]",
			want:  "[[3,1],[4,2]]\n",
		},
		{
			name:  "正常_1x3",
			stdin: "[[1,2,3]]",
			want:  "[[1],[2],[3]]\n",
		},
		{
			name:  "正常_2回転",
			stdin: "[[1,2],[3,4]]",
			args:  []string{"-n", "2"},
			want:  "[[4,3],[2,1]]\n",
		},
		{
			name:  "正常_反時計回り",
			stdin: "[[1,2],[3,4]]",
			args:  []string{"--turns=-1"},
			want:  "[[2,4],[1,3]]\n",
		},
		{
			name:  "正常_クランプ",
			stdin: "[[-1,5],[15,10]]",
			args:  []string{"--min", "0", "--max", "10"},
			want:  "[[10,0],[10,5]]\n",
		},
		{
			name:    "異常_非矩形",
			stdin:   "[[1,2],[3]]",
			wantErr: matrix2d.ErrJaggedGrid,
		},
		{
			name:    "異常_空",
			stdin:   "[]",
			wantErr: matrix2d.ErrEmptyGrid,
		},
		{
			name:    "異常_後続データ",
			stdin:   "[[1]] garbage",
			wantErr: ErrTrailingData,
		},
		{
			name:    "異常_複数のグリッド",
			stdin:   "[[1]][[2]]",
			wantErr: ErrTrailingData,
		},
		{
			name:    "異常_範囲逆転",
			stdin:   "[[1]]",
			args:    []string{"--min", "10", "--max", "0"},
			wantErr: mathx.ErrInvalidRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, err := execute(t, tc.stdin, tc.args...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Contains(t, errOut, "Error:")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, os.WriteFile(path, []byte("[[7]]"), 0644))

	out, _, err := execute(t, "", path)
	require.NoError(t, err)
	require.Equal(t, "[[7]]\n", out)

	_, _, err = execute(t, "", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestRunFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		sub  string
	}{
		{name: "異常_minのみ", args: []string{"--min", "0"}, sub: "max"},
		{name: "異常_未知のフラグ", args: []string{"--bogus"}, sub: "bogus"},
		{name: "異常_引数過多", args: []string{"a.json", "b.json"}, sub: "accepts at most 1 arg"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, err := execute(t, "[[1]]", tc.args...)
			require.Error(t, err)
			require.Empty(t, out)
			require.Contains(t, errOut, "Error:")
			require.Contains(t, errOut, tc.sub)
		})
	}
}
