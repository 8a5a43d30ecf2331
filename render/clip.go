package render

import (
	"github.com/softrast/softrast/mesh"
)

// maxClipVertices bounds the polygon produced by clipping one
// triangle against the six view-volume planes.
const maxClipVertices = 36

// clipFace clips the triangle against the planes v·axis <= w and
// v·axis >= -w for each of x, y, z, in homogeneous space before
// the perspective divide. All vertex attributes are interpolated
// at plane intersections. It writes the resulting polygon into
// out and returns its vertex count.
func clipFace(f *mesh.Face, out *[maxClipVertices]mesh.Vertex) int {
	out[0], out[1], out[2] = f.V[0], f.V[1], f.V[2]
	count := 3

	var scratch [maxClipVertices]mesh.Vertex
	for _, factor := range [2]float32{1, -1} {
		for axis := 0; axis < 3; axis++ {
			n := count
			copy(scratch[:n], out[:n])
			count = 0

			for i := 0; i < n; i++ {
				cur := &scratch[i]
				next := &scratch[(i+1)%n]

				curVal := cur.Position.At(axis) * factor
				nextVal := next.Position.At(axis) * factor
				curInside := curVal <= cur.Position.W
				nextInside := nextVal <= next.Position.W

				if nextInside {
					if !curInside {
						out[count] = intersect(cur, next, curVal, nextVal)
						count++
					}
					out[count] = *next
					count++
				} else if curInside {
					out[count] = intersect(cur, next, curVal, nextVal)
					count++
				}
			}
			if count == 0 {
				return 0
			}
		}
	}
	return count
}

// intersect returns the vertex where the edge cur->next crosses
// the clip plane.
func intersect(cur, next *mesh.Vertex, curVal, nextVal float32) mesh.Vertex {
	t := (cur.Position.W - curVal) /
		((cur.Position.W - curVal) - (next.Position.W - nextVal))
	return cur.Lerp(*next, t)
}
