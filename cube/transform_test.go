package cube

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	lin "github.com/xlab/linmath"
)

const matrixDelta = 1e-4

func assertMatrix(t *testing.T, want mgl32.Mat4, got lin.Mat4x4) {
	t.Helper()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			assert.InDeltaf(t, want[col*4+row], got[col][row], matrixDelta, "element [%d][%d]", col, row)
		}
	}
}

func rotY(degrees float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(degrees))
}

func TestNewTransformIsIdentity(t *testing.T) {
	assertMatrix(t, mgl32.Ident4(), NewTransform().Model)
}

func TestSingleSteps(t *testing.T) {
	tr := NewTransform()

	tr.Apply(Input{Left: true})
	assertMatrix(t, rotY(-1), tr.Model)

	tr.Apply(Input{Right: true})
	assertMatrix(t, mgl32.Ident4(), tr.Model)
}

func TestBothKeysCancel(t *testing.T) {
	tr := NewTransform()
	tr.Apply(Input{Right: true})
	tr.Apply(Input{Right: true})

	tr.Apply(Input{Left: true, Right: true})
	assertMatrix(t, rotY(2), tr.Model)
}

func TestNoInputLeavesModel(t *testing.T) {
	tr := NewTransform()
	tr.Apply(Input{Left: true})
	before := tr.Model

	tr.Apply(Input{})
	assert.Equal(t, before, tr.Model)
}

func TestRotationSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		n, m := rng.Intn(60), rng.Intn(60)
		keys := make([]Input, 0, n+m)
		for j := 0; j < n; j++ {
			keys = append(keys, Input{Left: true})
		}
		for j := 0; j < m; j++ {
			keys = append(keys, Input{Right: true})
		}
		rng.Shuffle(len(keys), func(a, b int) { keys[a], keys[b] = keys[b], keys[a] })

		tr := NewTransform()
		for _, in := range keys {
			tr.Apply(in)
		}
		assertMatrix(t, rotY(float32(m-n)), tr.Model)
	}
}

func TestViewAndProjection(t *testing.T) {
	assertMatrix(t, mgl32.Translate3D(0, 0, -3), View())
	assertMatrix(t, mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100), Projection(800.0/600.0))
}
