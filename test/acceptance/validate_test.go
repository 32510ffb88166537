package acceptance_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const wellFormed = `id,day,date,start_time,end_time,stage,title,category
fri-01,Friday,2024-06-21,9:30 AM,10:15 AM,Big Barn,Morning Fiddle,Performance
fri-02,Friday,2024-06-21,12:00 PM,1:00 PM,Sunshine Stage,Yoga on the Grass,Activity
sat-01,Saturday,2024-06-22,8:45 PM,11:00 PM,Eden Field Main Stage,Headliner,Performance
`

var _ = Describe("schedcheck validate", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "schedcheck-acceptance-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { os.RemoveAll(dir) })
	})

	It("passes a well-formed file", func() {
		writeFile(filepath.Join(dir, "schedule.csv"), wellFormed)

		r := schedcheck(dir, "schedule.csv")
		Expect(r.Code).To(Equal(0))
		Expect(r.Stdout).To(Equal("CSV validation passed.\n"))
		Expect(r.Stderr).To(BeEmpty())
	})

	It("accepts the validate subcommand form", func() {
		writeFile(filepath.Join(dir, "schedule.csv"), wellFormed)

		r := schedcheck(dir, "validate", "schedule.csv")
		Expect(r.Code).To(Equal(0))
		Expect(r.Stdout).To(Equal("CSV validation passed.\n"))
	})

	It("reports a repeated id at the later row", func() {
		writeFile(filepath.Join(dir, "schedule.csv"), strings.Replace(wellFormed, "fri-02,", "fri-01,", 1))

		r := schedcheck(dir, "schedule.csv")
		Expect(r.Code).To(Equal(2))
		Expect(r.Stdout).To(BeEmpty())
		Expect(r.ErrorLines()).To(Equal([]string{"ERROR: Row 3: duplicate id 'fri-01'"}))
	})

	It("reports only the missing header when stage is absent", func() {
		csv := `id,day,date,start_time,end_time,title,category
,Monday,not-a-date,noon,later,,Talk
`
		writeFile(filepath.Join(dir, "schedule.csv"), csv)

		r := schedcheck(dir, "schedule.csv")
		Expect(r.Code).To(Equal(2))
		Expect(r.ErrorLines()).To(Equal([]string{"ERROR: Missing required headers: stage"}))
	})

	It("reports a nonexistent path without parsing", func() {
		r := schedcheck(dir, "missing.csv")
		Expect(r.Code).To(Equal(2))
		Expect(r.Stderr).To(Equal("ERROR: missing.csv not found\n"))
	})

	It("prints usage when the path is missing", func() {
		r := schedcheck(dir)
		Expect(r.Code).To(Equal(2))
		Expect(r.Stderr).To(HavePrefix("Usage: schedcheck"))
		Expect(r.Stdout).To(BeEmpty())

		r = schedcheck(dir, "validate")
		Expect(r.Code).To(Equal(2))
		Expect(r.Stderr).To(HavePrefix("Usage: schedcheck validate"))
	})

	It("rejects more than one path", func() {
		r := schedcheck(dir, "a.csv", "b.csv")
		Expect(r.Code).To(Equal(2))
		Expect(r.Stderr).To(ContainSubstring("expected one schedule path"))
	})

	It("reports every violation in one run", func() {
		csv := `id,day,date,start_time,end_time,stage,title,category
,Monday,24-01-01,930 AM,9:30am,Main Stage,,Talk
x1,Friday,2024-13-40,25:00 AM,11:59 PM,Lounging,Late Lounge,Activity
x1,Sunday,2024/01/01,1:00 PM,2:00 PM,Brookside,Creek Song,Performance
`
		writeFile(filepath.Join(dir, "schedule.csv"), csv)

		r := schedcheck(dir, "schedule.csv")
		Expect(r.Code).To(Equal(2))
		Expect(r.ErrorLines()).To(Equal([]string{
			"ERROR: Row 2: empty id",
			"ERROR: Row 2: invalid day 'Monday'",
			"ERROR: Row 2: invalid date '24-01-01' (expected YYYY-MM-DD)",
			"ERROR: Row 2: bad start_time '930 AM'",
			"ERROR: Row 2: bad end_time '9:30am'",
			"ERROR: Row 2: invalid stage 'Main Stage'",
			"ERROR: Row 2: empty title",
			"ERROR: Row 2: invalid category 'Talk'",
			"ERROR: Row 4: duplicate id 'x1'",
			"ERROR: Row 4: invalid date '2024/01/01' (expected YYYY-MM-DD)",
		}))
	})

	It("validates gzip-compressed schedules", func() {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(wellFormed))
		Expect(err).NotTo(HaveOccurred())
		Expect(zw.Close()).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "schedule.csv.gz"), buf.Bytes(), 0o644)).To(Succeed())

		r := schedcheck(dir, "schedule.csv.gz")
		Expect(r.Code).To(Equal(0))
		Expect(r.Stdout).To(Equal("CSV validation passed.\n"))
	})

	It("rejects a malformed s3 location", func() {
		r := schedcheck(dir, "s3://bucket-only")
		Expect(r.Code).To(Equal(2))
		Expect(r.Stderr).To(ContainSubstring("invalid location"))
	})

	It("validates a file named like a subcommand through validate", func() {
		writeFile(filepath.Join(dir, "schema"), wellFormed)

		r := schedcheck(dir, "validate", "schema")
		Expect(r.Code).To(Equal(0))
		Expect(r.Stdout).To(Equal("CSV validation passed.\n"))
	})

	It("reads a padded stage header as an empty stage column", func() {
		writeFile(filepath.Join(dir, "schedule.csv"), strings.Replace(wellFormed, ",stage,", ", stage ,", 1))

		r := schedcheck(dir, "schedule.csv")
		Expect(r.Code).To(Equal(2))
		Expect(r.ErrorLines()).To(Equal([]string{
			"ERROR: Row 2: invalid stage ''",
			"ERROR: Row 3: invalid stage ''",
			"ERROR: Row 4: invalid stage ''",
		}))
	})

	It("reports every header missing when the file opens with a blank line", func() {
		writeFile(filepath.Join(dir, "schedule.csv"), "\n"+wellFormed)

		r := schedcheck(dir, "schedule.csv")
		Expect(r.Code).To(Equal(2))
		Expect(r.ErrorLines()).To(Equal([]string{
			"ERROR: Missing required headers: id, day, date, start_time, end_time, stage, title, category",
		}))
	})
})
