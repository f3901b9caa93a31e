package animation

import (
	"testing"

	"spotlight-room/internal/mathutil"
)

var testCone = mathutil.Vec3{0, 5.5, 0}

func TestComputeFrameFacing(t *testing.T) {
	o := DefaultOrbit()
	for _, ts := range []float64{0, 250, 1000, 3333, 9000} {
		f := ComputeFrame(ts, o, testCone)
		p := o.Position(ts)

		if f.Target != p || f.Disk.Position != p || f.LightTarget != p {
			t.Fatalf("t=%v: orbit point not propagated: %+v", ts, f)
		}
		if f.Cone.Position != testCone || f.LightPosition != testCone {
			t.Fatalf("t=%v: cone/light moved", ts)
		}

		toTarget := p.Sub(testCone).Normalize()
		if d := f.Cone.Forward().Dot(toTarget); !approx(d, 1, 1e-9) {
			t.Errorf("t=%v: cone forward·toTarget = %v", ts, d)
		}
		if d := f.Disk.Forward().Dot(toTarget.Scale(-1)); !approx(d, 1, 1e-9) {
			t.Errorf("t=%v: disk does not face the cone (%v)", ts, d)
		}
	}
}

func TestComputeFrameRotationOrthonormal(t *testing.T) {
	f := ComputeFrame(4321, DefaultOrbit(), testCone)
	for _, r := range []mathutil.Mat3{f.Cone.Rotation, f.Disk.Rotation} {
		if !approx(r.Det(), 1, 1e-9) {
			t.Errorf("det = %v", r.Det())
		}
		rt := mathutil.Mat3Mul(r, r.Transpose())
		id := mathutil.Mat3Identity()
		for i := range rt {
			if !approx(rt[i], id[i], 1e-9) {
				t.Fatalf("R·Rᵀ = %v", rt)
			}
		}
	}
}

func TestComputeFrameDeterministic(t *testing.T) {
	a := ComputeFrame(777, DefaultOrbit(), testCone)
	b := ComputeFrame(777, DefaultOrbit(), testCone)
	if a != b {
		t.Fatal("frames differ for identical t")
	}
}
