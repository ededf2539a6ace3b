// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// VoxelVertexShader transforms lit, flat-coloured meshes.
//
//go:embed voxel.vert
var VoxelVertexShader string

// VoxelFragmentShader shades voxels and the rollover cube.
//
//go:embed voxel.frag
var VoxelFragmentShader string

// LineVertexShader draws per-vertex coloured lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader draws per-vertex coloured lines.
//
//go:embed line.frag
var LineFragmentShader string
