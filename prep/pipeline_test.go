package prep_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dataprep/prep"
	"github.com/katalvlaran/dataprep/remap"
	"github.com/katalvlaran/dataprep/sparse"
	"github.com/katalvlaran/dataprep/table"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

// PrepareSuite exercises the remap → describe → build pipeline end to end.
type PrepareSuite struct {
	suite.Suite
	log *table.Table
}

// SetupTest rebuilds the interaction log before each test, since Prepare
// mutates it in place.
func (s *PrepareSuite) SetupTest() {
	tb, err := table.FromRecords([]string{"user", "item", "rating"},
		[]any{"bob", "x", 4.0},
		[]any{"amy", "y", 3.0},
		[]any{"bob", "y", 5.0},
		[]any{"bob", "y", 1.0},
	)
	s.Require().NoError(err)
	s.log = tb
}

func (s *PrepareSuite) TestImplicitFeedback() {
	res, err := prep.Prepare(s.log, "user", "item", "")
	s.Require().NoError(err)

	s.Equal(prep.Description{Users: "user", Items: "item", NUsers: 2, NItems: 2}, res.Description)
	s.Same(s.log, res.Table)

	d, err := res.Matrix.ToDense()
	s.Require().NoError(err)
	s.Equal("[0, 1]\n[1, 2]\n", d.String())
}

func (s *PrepareSuite) TestExplicitFeedback() {
	res, err := prep.Prepare(s.log, "user", "item", "rating")
	s.Require().NoError(err)

	bob, err := res.Indices.Users().Code("bob")
	s.Require().NoError(err)
	y, err := res.Indices.Items().Code("y")
	s.Require().NoError(err)

	v, err := res.Matrix.At(bob, y)
	s.Require().NoError(err)
	s.Equal(6.0, v) // 5 + 1
}

func (s *PrepareSuite) TestDecodeEveryRow() {
	orig, err := s.log.Column("user")
	s.Require().NoError(err)
	want := orig.Values()

	res, err := prep.Prepare(s.log, "user", "item", "", prep.WithCloneInput())
	s.Require().NoError(err)
	s.NotSame(s.log, res.Table)

	c, err := res.Table.Column("user")
	s.Require().NoError(err)
	codes, err := c.Ints()
	s.Require().NoError(err)
	got, err := res.Indices[remap.EntityUsers].Decode(codes)
	s.Require().NoError(err)
	s.Equal(want, got)

	// caller's table untouched under WithCloneInput
	still, _ := s.log.Column("user")
	s.Equal(table.KindString, still.Kind())
}

func (s *PrepareSuite) TestMissingFieldLeavesTable() {
	_, err := prep.Prepare(s.log, "user", "item", "score")
	s.ErrorIs(err, prep.ErrMissingField)

	c, _ := s.log.Column("user")
	s.Equal(table.KindString, c.Kind())
}

func (s *PrepareSuite) TestMatrixOptions() {
	res, err := prep.Prepare(s.log, "user", "item", "rating",
		prep.WithMatrixOptions(sparse.WithDuplicates(sparse.KeepFirst)))
	s.Require().NoError(err)

	v, err := res.Matrix.At(1, 1)
	s.Require().NoError(err)
	s.Equal(5.0, v)
}

func (s *PrepareSuite) TestLogger() {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := prep.Prepare(s.log, "user", "item", "", prep.WithLogger(logger))
	s.Require().NoError(err)

	out := buf.String()
	s.Contains(out, `"component":"prep"`)
	s.Contains(out, `"message":"remapped"`)
	s.Contains(out, `"nnz":3`)
}

func (s *PrepareSuite) TestEmptyLog() {
	empty, err := table.FromRecords([]string{"user", "item"})
	s.Require().NoError(err)

	res, err := prep.Prepare(empty, "user", "item", "")
	s.Require().NoError(err)
	s.Equal(sparse.Shape{}, res.Matrix.Shape())
	s.Zero(res.Matrix.NNZ())
}

// TestCellEqualsRowCount checks the implicit-feedback property on random logs.
func (s *PrepareSuite) TestCellEqualsRowCount() {
	rng := rand.New(rand.NewSource(99))
	const n = 400
	users := make([]int64, n)
	items := make([]string, n)
	type pair struct {
		u int64
		i string
	}
	counts := make(map[pair]float64)
	for k := 0; k < n; k++ {
		users[k] = rng.Int63n(30) * 7
		items[k] = string(rune('a' + rng.Intn(12)))
		counts[pair{users[k], items[k]}]++
	}
	tb, err := table.FromColumns(table.IntColumn("user", users), table.StringColumn("item", items))
	s.Require().NoError(err)

	res, err := prep.Prepare(tb, "user", "item", "")
	s.Require().NoError(err)

	total := 0.0
	for p, want := range counts {
		u, err := res.Indices.Users().Code(p.u)
		s.Require().NoError(err)
		i, err := res.Indices.Items().Code(p.i)
		s.Require().NoError(err)
		got, err := res.Matrix.At(u, i)
		s.Require().NoError(err)
		s.Equal(want, got)
		total += got
	}
	s.Equal(float64(n), total)
	s.Equal(len(counts), res.Matrix.NNZ())
}

func TestPrepareSuite(t *testing.T) {
	suite.Run(t, new(PrepareSuite))
}
