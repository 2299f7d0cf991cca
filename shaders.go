package glshapes

// VertexShaderSource positions 2D vertices with the "projection" and "transform" uniforms and passes the transformed position on as fragPosition.
const VertexShaderSource = `
layout (location = 0) in vec2 position;

uniform mat4 projection;
uniform mat4 transform;

out vec2 fragPosition;

void main() {
	vec4 world = transform * vec4(position, 0.0, 1.0);
	fragPosition = world.xy;
	gl_Position = projection * world;
}
`

// FlatFragmentShaderSource fills with the "ucolor" uniform.
const FlatFragmentShaderSource = `
uniform vec3 ucolor;

out vec4 color;

void main() {
	color = vec4(ucolor, 1.0);
}
`

// RadialGradientFragmentShaderSource fades "ucolor" from opaque at "center" to transparent at distance "range".
const RadialGradientFragmentShaderSource = `
in vec2 fragPosition;

uniform vec3 ucolor;
uniform vec2 center;
uniform float range;

out vec4 color;

void main() {
	float t = clamp(distance(fragPosition, center) / range, 0.0, 1.0);
	color = vec4(ucolor, 1.0 - t);
}
`
