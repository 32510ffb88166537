package e2e_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/re-cinq/schedcheck/internal/testutils"
)

const validSchedule = `id,day,date,start_time,end_time,stage,title,category
e1,Thursday,2024-06-20,6:00 PM,7:00 PM,Eden Hall,Welcome,Activity
e2,Friday,2024-06-21,9:30 AM,10:15 AM,Big Barn,Morning Fiddle,Performance
`

// tempDir creates a scratch directory that is removed after the test.
func tempDir() string {
	dir, err := os.MkdirTemp("", "schedcheck-test-*")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func() { os.RemoveAll(dir) })
	return dir
}

// tempRepo creates a scratch directory that looks like a Git checkout.
func tempRepo() string {
	dir := tempDir()
	Expect(os.Mkdir(filepath.Join(dir, ".git"), 0o755)).To(Succeed())
	return dir
}

// schedcheck runs the binary in dir with a clean SCHEDCHECK_* environment.
func schedcheck(dir string, args ...string) testutils.Result {
	r, err := testutils.Run(binaryPath, dir, args...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return r
}

// schedcheckOK runs the binary and expects exit code 0.
func schedcheckOK(dir string, args ...string) string {
	r := schedcheck(dir, args...)
	ExpectWithOffset(1, r.Code).To(Equal(0), "schedcheck %s failed: %s", strings.Join(args, " "), r.Stderr)
	return r.Stdout
}

// writeFile creates a file with the given content, creating parent dirs as needed.
func writeFile(dir, name, content string) string {
	p := filepath.Join(dir, name)
	err := os.MkdirAll(filepath.Dir(p), 0o755)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	err = os.WriteFile(p, []byte(content), 0o644)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return p
}

// readFile reads a file and returns its content.
func readFile(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return string(data)
}
