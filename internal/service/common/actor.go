//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"os"
	"os/user"
	"strings"

	rpc "github.com/oshokin/alarm-clock/internal/rpc/v1"
)

// UnknownActorField replaces a hostname or username that cannot be detected.
const UnknownActorField = "unknown"

// usernameEnvVars are consulted when the user database lookup fails.
var usernameEnvVars = []string{"USER", "USERNAME", "LOGNAME"}

// DetectActor identifies the caller for the daemon's audit log.
// Fields that cannot be detected are set to UnknownActorField.
func DetectActor() *rpc.SystemActor {
	return &rpc.SystemActor{
		Hostname: detectHostname(os.Hostname),
		Username: detectUsername(user.Current, os.Getenv),
	}
}

func detectHostname(hostname func() (string, error)) string {
	name, err := hostname()
	if err != nil || name == "" {
		return UnknownActorField
	}

	return name
}

// detectUsername prefers the user database and falls back to the
// environment. A Windows "DOMAIN\user" name is reduced to "user".
func detectUsername(current func() (*user.User, error), getenv func(string) string) string {
	var name string

	if u, err := current(); err == nil {
		name = u.Username
	}

	for _, key := range usernameEnvVars {
		if name != "" {
			break
		}

		name = getenv(key)
	}

	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}

	if name == "" {
		return UnknownActorField
	}

	return name
}
