// Package glshapes draws circles, rectangles, radial gradients, and filled outlines through an OpenGL 3.3 context.
//
// Shapes are tessellated once into triangle meshes and uploaded into a vertex array, a vertex buffer, and an index buffer that the shape owns. Each frame a shape is drawn with a caller-owned shader program by DrawWith, which sets the projection, transform, and color uniforms and issues one indexed draw call. All calls must be made from the thread that owns the GL context, see Context.
package glshapes
