package animation

import "spotlight-room/internal/mathutil"

// Up is the world up axis used for look-at orientation.
var Up = mathutil.Vec3{0, 1, 0}

// Pose is a position plus a rotation whose +Z column is the facing direction.
type Pose struct {
	Position mathutil.Vec3
	Rotation mathutil.Mat3
}

// Forward returns the direction the pose faces.
func (p Pose) Forward() mathutil.Vec3 {
	return p.Rotation.Column(2)
}

// Frame is everything one animation tick changes.
type Frame struct {
	T             float64
	Target        mathutil.Vec3 // orbit position
	Cone          Pose
	Disk          Pose
	LightPosition mathutil.Vec3
	LightTarget   mathutil.Vec3
}

// ComputeFrame derives the frame at time t. The cone stays at conePos and
// turns toward the orbit point; the disk sits on the orbit point and turns
// back toward the cone; the light sits on the cone and aims at the orbit point.
func ComputeFrame(t float64, orbit Orbit, conePos mathutil.Vec3) Frame {
	p := orbit.Position(t)
	return Frame{
		T:      t,
		Target: p,
		Cone: Pose{
			Position: conePos,
			Rotation: mathutil.LookAt(conePos, p, Up),
		},
		Disk: Pose{
			Position: p,
			Rotation: mathutil.LookAt(p, conePos, Up),
		},
		LightPosition: conePos,
		LightTarget:   p,
	}
}
