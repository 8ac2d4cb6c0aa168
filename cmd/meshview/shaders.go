package main

// Attribute locations follow the mesh gateway convention:
// 0 = position, 1 = normal, 2 = first UV channel.

const vertexShaderSrc = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;
out vec2 vUV;

void main() {
    gl_Position = uMVP * vec4(aPosition, 1.0);
    vNormal = mat3(uModel) * aNormal;
    vUV = aUV;
}
`

const fragmentShaderSrc = `#version 410 core
in vec3 vNormal;
in vec2 vUV;

uniform vec3 uLightDir;

out vec4 fragColor;

void main() {
    float ndl = max(dot(normalize(vNormal), -normalize(uLightDir)), 0.0);
    float check = mod(floor(vUV.x * 16.0) + floor(vUV.y * 8.0), 2.0);
    vec3 base = mix(vec3(0.35, 0.55, 0.80), vec3(0.90, 0.90, 0.95), check);
    fragColor = vec4(base * (0.25 + 0.75 * ndl), 1.0);
}
`
