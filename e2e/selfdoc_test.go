package e2e_test

import (
	"io"
	"os/exec"

	"github.com/creack/pty"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/re-cinq/schedcheck/internal/testutils"
)

var _ = Describe("schedcheck schema", func() {
	It("outputs YAML describing every required column", func() {
		out := schedcheckOK(tempDir(), "schema")

		var doc map[string]any
		Expect(yaml.Unmarshal([]byte(out), &doc)).To(Succeed())
		Expect(doc).To(HaveKey("description"))

		cols, ok := doc["columns"].([]any)
		Expect(ok).To(BeTrue(), "schema should list columns")
		var names []string
		for _, c := range cols {
			names = append(names, c.(map[string]any)["name"].(string))
		}
		Expect(names).To(Equal([]string{"id", "day", "date", "start_time", "end_time", "stage", "title", "category"}))
	})

	It("lists the allowed stages", func() {
		out := schedcheckOK(tempDir(), "schema")
		Expect(out).To(ContainSubstring("Mike Compton Dance Hall"))
		Expect(out).To(ContainSubstring("U-LEAF"))
	})
})

var _ = Describe("schedcheck explain", func() {
	It("prints raw markdown when stdout is not a terminal", func() {
		out := schedcheckOK(tempDir(), "explain")
		Expect(out).To(HavePrefix("# schedcheck"))
		Expect(out).To(ContainSubstring("Exit codes"))
		Expect(out).NotTo(ContainSubstring("\x1b["))
	})

	It("renders styled output on a terminal", func() {
		cmd := exec.Command(binaryPath, "explain")
		cmd.Dir = tempDir()
		cmd.Env = testutils.CleanEnv()
		f, err := pty.Start(cmd)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		// Reading the pty master returns EIO once the child exits.
		out, _ := io.ReadAll(f)
		Expect(cmd.Wait()).To(Succeed())
		Expect(string(out)).To(ContainSubstring("\x1b["))
		Expect(string(out)).To(ContainSubstring("schedcheck"))
	})
})

var _ = Describe("schedcheck version", func() {
	It("prints the version", func() {
		out := schedcheckOK(tempDir(), "version")
		Expect(out).To(HavePrefix("schedcheck "))
	})
})
