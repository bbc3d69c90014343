package plan_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/rcarve/carveplan/band"
	"github.com/rcarve/carveplan/plan"
	"github.com/rcarve/carveplan/rimage"
)

type PlanSuite struct {
	suite.Suite
}

func TestPlanSuite(t *testing.T) {
	suite.Run(t, new(PlanSuite))
}

// buildComposition constructs an 8x8 ply image with two disjoint ply
// regions, a single rough band spanning the whole elevation range, and
// the dummy ply descriptor every composition requires.
func buildComposition(t *testing.T) plan.Composition {
	t.Helper()
	plyImage, err := rimage.New[band.PlyIndex, rimage.PlyTag](8, 8, 1)
	require.NoError(t, err)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 2; x++ {
			plyImage.SetUnchecked(x, y, 0, 1)
		}
	}
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			plyImage.SetUnchecked(x, y, 0, 2)
		}
	}

	return plan.Composition{
		PlyDescs: []band.PlyDesc{
			{TopThou: 0, Hidden: true},
			{Guid: uuid.New(), TopThou: 100},
			{Guid: uuid.New(), TopThou: 200},
		},
		BandDescs: []band.BandDesc{
			{TopThou: 1000, BotThou: 0, CutPass: "rough"},
		},
		PlyImage:   plyImage,
		CutPass:    "rough",
		ToolDiaPix: 2,
		StepPix:    1,
	}
}

// TestDeterministicDoubleRun covers Scenario 6: running the pipeline
// twice on identical inputs produces byte-identical path vectors.
func (s *PlanSuite) TestDeterministicDoubleRun() {
	r1, err := plan.Plan(buildComposition(s.T()))
	s.Require().NoError(err)
	r2, err := plan.Plan(buildComposition(s.T()))
	s.Require().NoError(err)

	s.NotEmpty(r1.Paths)
	s.Equal(r1, r2)
}

func (s *PlanSuite) TestLoggingCollectorReceivesCounts() {
	var buf bytes.Buffer
	_, err := plan.Plan(buildComposition(s.T()), plan.WithCollector(plan.NewLoggingCollector(&buf)))
	s.Require().NoError(err)
	s.NotEmpty(buf.String())
	s.Contains(buf.String(), "region")
	s.Contains(buf.String(), "tool path")
}

func (s *PlanSuite) TestMissingDummyPlyIsFatal() {
	comp := buildComposition(s.T())
	comp.PlyDescs = comp.PlyDescs[1:] // drop the dummy ply
	_, err := plan.Plan(comp)
	s.Error(err)
}
