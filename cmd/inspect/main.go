package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"

	"spotlight-room/internal/animation"
	"spotlight-room/internal/mathutil"
	"spotlight-room/internal/scene"
	"spotlight-room/internal/texture"
)

func main() {
	t := flag.Float64("t", 0, "Animation time in milliseconds")
	flag.Parse()

	room, err := scene.Build(texture.NewDefaultCache(texture.Options{Seed: 1}))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Objects: %d\n", len(room.Objects))
	for i, o := range room.Objects {
		if o.Mesh == nil {
			fmt.Printf("  Object[%d] %q: no mesh, pos=%s\n", i, o.Name, fmtVec(o.Position))
			continue
		}
		m := o.Mesh
		world := o.World()
		lo := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
		hi := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
		for _, p := range m.Positions {
			w := world.MulPoint(p)
			for k := 0; k < 3; k++ {
				lo[k] = math.Min(lo[k], w[k])
				hi[k] = math.Max(hi[k], w[k])
			}
		}
		fmt.Printf("  Object[%d] %q: verts=%d, tris=%d, opacity=%.2f\n",
			i, o.Name, len(m.Positions), len(m.Tris), o.Material.Opacity)
		fmt.Printf("    BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n",
			lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])

		// Area by dominant world-space normal direction
		areaByDir := map[string]float64{}
		for _, tri := range m.Tris {
			a := world.MulPoint(m.Positions[tri[0]])
			b := world.MulPoint(m.Positions[tri[1]])
			c := world.MulPoint(m.Positions[tri[2]])
			n := b.Sub(a).Cross(c.Sub(a))
			areaByDir[dominant(n)] += 0.5 * n.Len()
		}
		dirs := make([]string, 0, len(areaByDir))
		for d := range areaByDir {
			dirs = append(dirs, d)
		}
		sort.Strings(dirs)
		for _, d := range dirs {
			fmt.Printf("    Faces %s: area=%.2f\n", d, areaByDir[d])
		}
	}

	f := animation.ComputeFrame(*t, animation.DefaultOrbit(), room.ConePosition())
	fmt.Printf("\nFrame t=%.1fms\n", f.T)
	fmt.Printf("  Target:   %s\n", fmtVec(f.Target))
	fmt.Printf("  Cone:     pos=%s forward=%s\n", fmtVec(f.Cone.Position), fmtVec(f.Cone.Forward()))
	fmt.Printf("  Disk:     pos=%s forward=%s\n", fmtVec(f.Disk.Position), fmtVec(f.Disk.Forward()))
	fmt.Printf("  Light:    pos=%s -> %s\n", fmtVec(f.LightPosition), fmtVec(f.LightTarget))
}

func dominant(n mathutil.Vec3) string {
	ax, ay, az := math.Abs(n[0]), math.Abs(n[1]), math.Abs(n[2])
	switch {
	case ax >= ay && ax >= az:
		if n[0] >= 0 {
			return "+X"
		}
		return "-X"
	case ay >= az:
		if n[1] >= 0 {
			return "+Y"
		}
		return "-Y"
	default:
		if n[2] >= 0 {
			return "+Z"
		}
		return "-Z"
	}
}

func fmtVec(v mathutil.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}
