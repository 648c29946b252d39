package canvas

var vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 FragPos;

void main()
{
    FragPos = vec3(model * vec4(aPos, 1.0));
    gl_Position = projection * view * vec4(FragPos, 1.0);
}
` + "\x00"

var meshFragmentShaderSource = `
#version 410 core
out vec4 FragColor;

uniform vec3 ourColor;

void main()
{
    FragColor = vec4(ourColor, 1.0);
}
` + "\x00"

// colour follows the normalised x/z position on the surface, lit by a flat
// face normal taken from screen-space derivatives.
var bezierFragmentShaderSource = `
#version 410 core
out vec4 FragColor;

in vec3 FragPos;

uniform float maxX;
uniform float maxZ;
uniform int line;
uniform vec3 lightDir;

void main()
{
    if (line == 1) {
        FragColor = vec4(0.1, 0.1, 0.1, 1.0);
        return;
    }
    vec3 normal = normalize(cross(dFdx(FragPos), dFdy(FragPos)));
    float diff = abs(dot(normal, normalize(-lightDir)));
    vec3 base = vec3(FragPos.x / max(maxX, 1.0), 0.4, FragPos.z / max(maxZ, 1.0));
    FragColor = vec4(base * (0.3 + 0.7 * diff), 1.0);
}
` + "\x00"

var hudVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTex;

uniform mat4 projection;

out vec2 TexCoord;

void main()
{
    TexCoord = aTex;
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

var hudFragmentShaderSource = `
#version 410 core
out vec4 FragColor;

in vec2 TexCoord;

uniform sampler2D hud;

void main()
{
    FragColor = texture(hud, TexCoord);
}
` + "\x00"

func NewMeshProgram() (*Program, error) {
	return NewProgram(vertexShaderSource, meshFragmentShaderSource)
}

func NewBezierProgram() (*Program, error) {
	return NewProgram(vertexShaderSource, bezierFragmentShaderSource)
}
