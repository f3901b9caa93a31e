package mathutil

import (
	"math"
	"testing"
)

func near(a, b Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestLookAt(t *testing.T) {
	up := Vec3{0, 1, 0}
	tests := []struct {
		name         string
		from, to     Vec3
		wantZ, wantY Vec3
	}{
		{"forward", Vec3{}, Vec3{0, 0, 5}, Vec3{0, 0, 1}, Vec3{0, 1, 0}},
		{"backward", Vec3{}, Vec3{0, 0, -1}, Vec3{0, 0, -1}, Vec3{0, 1, 0}},
		{"right", Vec3{1, 2, 3}, Vec3{4, 2, 3}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := LookAt(tc.from, tc.to, up)
			if !near(m.Column(2), tc.wantZ) {
				t.Errorf("z = %v, want %v", m.Column(2), tc.wantZ)
			}
			if !near(m.Column(1), tc.wantY) {
				t.Errorf("y = %v, want %v", m.Column(1), tc.wantY)
			}
			if math.Abs(m.Det()-1) > 1e-9 {
				t.Errorf("det = %v", m.Det())
			}
		})
	}
}

func TestLookAtStraightDown(t *testing.T) {
	m := LookAt(Vec3{0, 5, 0}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	z := m.Column(2)
	if z.Dot(Vec3{0, -1, 0}) < 0.9999 {
		t.Fatalf("z = %v", z)
	}
	if math.Abs(m.Det()-1) > 1e-6 {
		t.Fatalf("det = %v", m.Det())
	}
}

func TestRotationsAndTransforms(t *testing.T) {
	if got := RotX(math.Pi / 2).MulVec3(Vec3{0, 1, 0}); !near(got, Vec3{0, 0, 1}) {
		t.Errorf("RotX(90°)·Y = %v", got)
	}
	if got := RotY(math.Pi / 2).MulVec3(Vec3{0, 0, 1}); !near(got, Vec3{1, 0, 0}) {
		t.Errorf("RotY(90°)·Z = %v", got)
	}
	m := FromMat3Translation(RotY(math.Pi), Vec3{1, 2, 3})
	if got := m.MulPoint(Vec3{0, 0, 1}); !near(got, Vec3{1, 2, 2}) {
		t.Errorf("MulPoint = %v", got)
	}
}

func TestRGB(t *testing.T) {
	if got := RGB(0x00ff00); got != (Vec3{0, 1, 0}) {
		t.Errorf("RGB(0x00ff00) = %v", got)
	}
	if got := RGB(0x404040); math.Abs(got[0]-64.0/255) > 1e-12 {
		t.Errorf("RGB(0x404040) = %v", got)
	}
}
