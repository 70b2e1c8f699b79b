//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/require"
)

var errLookup = errors.New("lookup failed")

// TestDetectActor ensures both fields are always filled.
func TestDetectActor(t *testing.T) {
	t.Parallel()

	a := DetectActor()
	require.NotEmpty(t, a.GetHostname())
	require.NotEmpty(t, a.GetUsername())
}

func TestDetectHostname(t *testing.T) {
	t.Parallel()

	require.Equal(t, "box", detectHostname(func() (string, error) { return "box", nil }))
	require.Equal(t, UnknownActorField, detectHostname(func() (string, error) { return "", errLookup }))
	require.Equal(t, UnknownActorField, detectHostname(func() (string, error) { return "", nil }))
}

func TestDetectUsername(t *testing.T) {
	t.Parallel()

	failing := func() (*user.User, error) { return nil, errLookup }

	env := func(values map[string]string) func(string) string {
		return func(key string) string { return values[key] }
	}

	tests := map[string]struct {
		current func() (*user.User, error)
		env     map[string]string
		want    string
	}{
		"user database": {
			current: func() (*user.User, error) { return &user.User{Username: "alice"}, nil },
			env:     map[string]string{"USER": "ignored"},
			want:    "alice",
		},
		"windows domain stripped": {
			current: func() (*user.User, error) { return &user.User{Username: `CORP\bob`}, nil },
			want:    "bob",
		},
		"environment fallback order": {
			current: failing,
			env:     map[string]string{"USERNAME": "carol", "LOGNAME": "dave"},
			want:    "carol",
		},
		"nothing known": {
			current: failing,
			want:    UnknownActorField,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, detectUsername(tt.current, env(tt.env)))
		})
	}
}
