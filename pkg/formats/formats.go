// Package formats reads and writes rotation documents.
//
// A rotation document is YAML listing named rotations, each in one of
// several encodings:
//
//	angle_unit: degrees
//	rotations:
//	  - name: tilt
//	    axis_angle: {axis: [1, 0, 0], angle: 90}
//	  - name: spin
//	    scaled_axis: [0, 90, 0]
//	  - name: heading
//	    euler: {order: YXZ, angles: [90, 0, 0]}
//	  - name: raw
//	    quat: [0, 0, 0, 1]
//	  - name: turn
//	    arc: {from: [1, 0, 0], to: [0, 1, 0]}
//
// Every entry resolves to a double precision unit quaternion and can be
// rewritten in any encoding except arc.
package formats
