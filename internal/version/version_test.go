package version

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())

	full := Full("alarm-clockd")
	require.Contains(t, full, "alarm-clockd "+Short())
	require.Contains(t, full, runtime.GOOS+"/"+runtime.GOARCH)

	fields := Fields()
	require.Len(t, fields, 6)
	require.Equal(t, Version, fields[1])
}

func TestAttachCobraVersionCommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "alarmctl", Run: func(*cobra.Command, []string) {}}
	AttachCobraVersionCommand(root)

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Equal(t, Full("alarmctl")+"\n", out.String())
	require.Equal(t, Short(), root.Version)
}
