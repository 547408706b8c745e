package mtx_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/spmvbench/coo"
	"github.com/katalvlaran/spmvbench/mtx"
)

const general = `%%MatrixMarket matrix coordinate real general
% 3x4 test matrix
%

3 4 4
1 1 1.5
1 4 -2
3 2 3e2
3 3 4
`

var _ = Describe("Read", func() {
	It("should read a general real matrix as 0-based triplets", func() {
		h, s, err := mtx.Read(strings.NewReader(general))

		Expect(err).ToNot(HaveOccurred())
		Expect(h.Rows).To(Equal(3))
		Expect(h.Cols).To(Equal(4))
		Expect(h.NNZ).To(Equal(4))
		Expect(h.Field).To(Equal(mtx.FieldReal))
		Expect(s.Triplets()).To(Equal([]coo.Triplet{
			{Row: 0, Col: 0, Val: 1.5},
			{Row: 0, Col: 3, Val: -2},
			{Row: 2, Col: 1, Val: 300},
			{Row: 2, Col: 2, Val: 4},
		}))
		rows, cols := s.Dims()
		Expect(rows).To(Equal(3))
		Expect(cols).To(Equal(4))
	})

	It("should accept a file without a banner", func() {
		h, s, err := mtx.Read(strings.NewReader("% no banner\n2 2 1\n2 1 7\n"))

		Expect(err).ToNot(HaveOccurred())
		Expect(h.Field).To(Equal(mtx.FieldReal))
		Expect(s.Triplets()).To(ConsistOf(coo.Triplet{Row: 1, Col: 0, Val: 7}))
	})

	It("should accept a size line as the very first line", func() {
		_, s, err := mtx.Read(strings.NewReader("1 1 1\n1 1 10\n"))

		Expect(err).ToNot(HaveOccurred())
		Expect(s.Len()).To(Equal(1))
	})

	It("should store pattern entries as 1.0", func() {
		in := "%%MatrixMarket matrix coordinate pattern general\n2 2 2\n1 2\n2 1\n"
		h, s, err := mtx.Read(strings.NewReader(in))

		Expect(err).ToNot(HaveOccurred())
		Expect(h.Field).To(Equal(mtx.FieldPattern))
		Expect(s.Triplets()).To(Equal([]coo.Triplet{
			{Row: 0, Col: 1, Val: 1},
			{Row: 1, Col: 0, Val: 1},
		}))
	})

	It("should keep duplicate entries", func() {
		in := "%%MatrixMarket matrix coordinate integer general\n1 1 2\n1 1 1\n1 1 1\n"
		_, s, err := mtx.Read(strings.NewReader(in))

		Expect(err).ToNot(HaveOccurred())
		Expect(s.Len()).To(Equal(2))
	})

	It("should accept a banner in any case", func() {
		in := "%%MatrixMarket MATRIX Coordinate REAL General\n1 1 0\n"
		h, s, err := mtx.Read(strings.NewReader(in))

		Expect(err).ToNot(HaveOccurred())
		Expect(h.NNZ).To(BeZero())
		Expect(s.Len()).To(BeZero())
	})

	DescribeTable("unsupported banners",
		func(banner string) {
			_, _, err := mtx.Read(strings.NewReader(banner + "\n2 2 0\n"))
			Expect(err).To(MatchError(mtx.ErrUnsupported))
		},
		Entry("array format", "%%MatrixMarket matrix array real general"),
		Entry("complex field", "%%MatrixMarket matrix coordinate complex general"),
		Entry("symmetric", "%%MatrixMarket matrix coordinate real symmetric"),
		Entry("skew-symmetric", "%%MatrixMarket matrix coordinate real skew-symmetric"),
		Entry("hermitian", "%%MatrixMarket matrix coordinate real hermitian"),
		Entry("vector object", "%%MatrixMarket vector coordinate real general"),
	)

	DescribeTable("malformed input",
		func(in, where string) {
			_, _, err := mtx.Read(strings.NewReader(in))
			Expect(err).To(MatchError(mtx.ErrMalformed))
			Expect(err.Error()).To(ContainSubstring(where))
		},
		Entry("empty", "", "missing size line"),
		Entry("only comments", "% a\n% b\n", "missing size line"),
		Entry("short banner", "%%MatrixMarket matrix coordinate\n1 1 0\n", "line 1"),
		Entry("short size line", "2 2\n", "line 1"),
		Entry("bad size", "2 x 1\n", "line 1"),
		Entry("zero rows", "0 2 0\n", "line 1"),
		Entry("negative nnz", "2 2 -1\n", "line 1"),
		Entry("too few entries", "2 2 2\n1 1 1\n", "got 1 of 2"),
		Entry("huge declared nnz", "2 2 4000000000000000000\n1 1 1\n", "got 1 of 4000000000000000000"),
		Entry("missing value", "2 2 1\n1 1\n", "line 2"),
		Entry("bad value", "2 2 1\n1 1 abc\n", "line 2"),
		Entry("row out of range", "2 2 1\n3 1 1\n", "line 2"),
		Entry("col zero", "2 2 1\n1 0 1\n", "line 2"),
		Entry("bad index", "%%MatrixMarket matrix coordinate real general\n2 2 1\n% c\n1.5 1 1\n", "line 4"),
	)
})

var _ = Describe("ReadFile", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "mtx")
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	It("should read a file from disk", func() {
		path := filepath.Join(dir, "small.mtx")
		Expect(os.WriteFile(path, []byte(general), 0o600)).To(Succeed())

		h, s, err := mtx.ReadFile(path)

		Expect(err).ToNot(HaveOccurred())
		Expect(h.NNZ).To(Equal(4))
		Expect(s.Len()).To(Equal(4))
	})

	It("should name the path in parse errors", func() {
		path := filepath.Join(dir, "bad.mtx")
		Expect(os.WriteFile(path, []byte("2 2 1\n"), 0o600)).To(Succeed())

		_, _, err := mtx.ReadFile(path)

		Expect(err).To(MatchError(mtx.ErrMalformed))
		Expect(err.Error()).To(ContainSubstring(path))
	})

	It("should fail on a missing file", func() {
		_, _, err := mtx.ReadFile(filepath.Join(dir, "absent.mtx"))

		Expect(err).To(MatchError(os.ErrNotExist))
	})
})

var _ = DescribeTable("MatrixName",
	func(path, want string) {
		Expect(mtx.MatrixName(path)).To(Equal(want))
	},
	Entry("unix path", "/home/u/bcsstk17/bcsstk17.mtx", "bcsstk17"),
	Entry("windows path", `C:\data\cant.mtx`, "cant"),
	Entry("bare name", "pdb1HYS.mtx", "pdb1HYS"),
	Entry("no extension", "dir/raw", "raw"),
	Entry("only extension", ".mtx", ".mtx"),
	Entry("other extension", "m.txt", "m.txt"),
)
