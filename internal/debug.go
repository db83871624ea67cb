package internal

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"regexp"
	"runtime"
	"sort"
	"strings"

	"github.com/earthboundkid/versioninfo/v2"
)

var sensitiveRegex = regexp.MustCompile(`(?i)(PASSWORD|API_KEY|ACCESS_KEY|SECRET|TOKEN)`)

func ShowVersion(w io.Writer) {
	fmt.Fprintf(w, "Version: %s\n", versioninfo.Short())
	fmt.Fprintf(w, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// EnvironmentVars prints the variables from environ whose names start with
// one of prefixes, sorted by name. Values of secret-looking names are masked.
func EnvironmentVars(w io.Writer, environ []string, prefixes ...string) {
	fmt.Fprintln(w, "Environment variables")

	selected := make([][]string, 0, len(environ))
	for _, entry := range environ {
		kv := strings.SplitN(entry, "=", 2)
		if len(kv) != 2 || !hasAnyPrefix(kv[0], prefixes) {
			continue
		}
		selected = append(selected, kv)
	}
	sort.Slice(selected, func(i, j int) bool {
		return selected[i][0] < selected[j][0]
	})

	for _, kv := range selected {
		if sensitiveRegex.MatchString(kv[0]) {
			fmt.Fprintf(w, "  %s: ********\n", kv[0])
		} else {
			fmt.Fprintf(w, "  %s: %s\n", kv[0], kv[1])
		}
	}
}

func hasAnyPrefix(name string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func UserInfo(w io.Writer) {
	fmt.Fprintf(w, "PID: %d\n", os.Getpid())
	currentUser, err := user.Current()
	if err != nil {
		fmt.Fprintf(w, "Error getting current user: %v\n", err)
		return
	}
	fmt.Fprintf(w, "User: uid=%s(%s) gid=%s\n", currentUser.Uid, currentUser.Username, currentUser.Gid)
}
