// Package snapshot compares JSON renderings against golden files under testdata/
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	callsLock sync.Mutex
	calls     = make(map[string]int)
)

// Filename returns the golden file for the next call from the running test
func Filename(t *testing.T) string {
	name := strings.NewReplacer("/", "-", " ", "_").Replace(t.Name())

	callsLock.Lock()
	call := calls[name]
	calls[name] = call + 1
	callsLock.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

// Validate checks obj against its golden file
// A missing golden file is written from obj instead.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	filename := Filename(t)
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		logrus.WithField("filename", filename).Info("writing snapshot file")
		require.NoError(t, os.WriteFile(filename, append(objJSON, '\n'), 0644))
		return
	}

	require.NoError(t, err)
	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}
