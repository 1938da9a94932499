// Package renderer draws the specimen scene graph with OpenGL: one forward
// pass with ambient plus two point lights, exponential-squared fog, and
// alpha blending for translucent shells.
package renderer

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/omaressa123/RAG-BioL/internal/engine/camera"
	"github.com/omaressa123/RAG-BioL/internal/engine/geometry"
	"github.com/omaressa123/RAG-BioL/internal/engine/scene"
	"github.com/omaressa123/RAG-BioL/internal/engine/shader"
	"github.com/omaressa123/RAG-BioL/internal/logger"
	"github.com/omaressa123/RAG-BioL/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	buffers map[*geometry.Mesh]*meshBuffers
}

type drawItem struct {
	mesh  *geometry.Mesh
	mat   *scene.Material
	model math.Mat4
	depth float32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		buffers: make(map[*geometry.Mesh]*meshBuffers),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	return r, nil
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for mesh, buf := range r.buffers {
		r.deleteBuffers(buf)
		delete(r.buffers, mesh)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render draws one frame of the scene from the camera's viewpoint.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Orbit) {
	gl.ClearColor(s.Background[0], s.Background[1], s.Background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	specimen := s.Specimen()
	if specimen == nil {
		return
	}

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()

	var opaque, translucent []drawItem
	collectItems(specimen, math.Identity(), view, &opaque, &translucent)

	// Far-to-near so overlapping shells composite correctly
	sort.Slice(translucent, func(i, j int) bool {
		return translucent[i].depth > translucent[j].depth
	})

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.program.Uniform("uProj"), 1, false, proj.Ptr())

	eye := cam.Position()
	gl.Uniform3f(r.program.Uniform("uCameraPos"), eye.X, eye.Y, eye.Z)

	gl.Uniform3f(r.program.Uniform("uAmbient"),
		s.Ambient.Color[0]*s.Ambient.Intensity,
		s.Ambient.Color[1]*s.Ambient.Intensity,
		s.Ambient.Color[2]*s.Ambient.Intensity)

	gl.Uniform3f(r.program.Uniform("uFogColor"), s.Fog.Color[0], s.Fog.Color[1], s.Fog.Color[2])
	gl.Uniform1f(r.program.Uniform("uFogDensity"), s.Fog.Density)

	for i, light := range s.Points {
		prefix := fmt.Sprintf("uLights[%d].", i)
		gl.Uniform3f(r.program.Uniform(prefix+"position"),
			light.Position[0], light.Position[1], light.Position[2])
		gl.Uniform3f(r.program.Uniform(prefix+"color"),
			light.Color[0]*light.Intensity,
			light.Color[1]*light.Intensity,
			light.Color[2]*light.Intensity)
		gl.Uniform1f(r.program.Uniform(prefix+"range"), light.Range)
	}

	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	for i := range opaque {
		r.drawOne(&opaque[i])
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	for i := range translucent {
		r.drawOne(&translucent[i])
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
}

// ReleaseNode frees the GPU buffers of every mesh in the node's subtree.
func (r *Renderer) ReleaseNode(n *scene.Node) {
	if n == nil {
		return
	}
	if n.Mesh != nil {
		if buf, ok := r.buffers[n.Mesh]; ok {
			r.deleteBuffers(buf)
			delete(r.buffers, n.Mesh)
		}
	}
	for _, c := range n.Children() {
		r.ReleaseNode(c)
	}
}

func collectItems(n *scene.Node, parent math.Mat4, view math.Mat4, opaque, translucent *[]drawItem) {
	world := parent.Mul(n.LocalMatrix())

	if n.Mesh != nil && n.Material != nil && len(n.Mesh.Indices) > 0 {
		origin := world.TransformPoint([3]float32{0, 0, 0})
		viewPos := view.TransformPoint(origin)
		item := drawItem{
			mesh:  n.Mesh,
			mat:   n.Material,
			model: world,
			depth: -viewPos[2],
		}
		if n.Material.Transparent {
			*translucent = append(*translucent, item)
		} else {
			*opaque = append(*opaque, item)
		}
	}

	for _, c := range n.Children() {
		collectItems(c, world, view, opaque, translucent)
	}
}

func (r *Renderer) drawOne(item *drawItem) {
	buf := r.upload(item.mesh)
	mat := item.mat

	gl.UniformMatrix4fv(r.program.Uniform("uModel"), 1, false, item.model.Ptr())
	gl.Uniform3f(r.program.Uniform("uColor"), mat.Color[0], mat.Color[1], mat.Color[2])
	gl.Uniform3f(r.program.Uniform("uEmissive"), mat.Emissive[0], mat.Emissive[1], mat.Emissive[2])
	gl.Uniform1f(r.program.Uniform("uRoughness"), mat.Roughness)
	gl.Uniform1f(r.program.Uniform("uMetalness"), mat.Metalness)
	gl.Uniform1f(r.program.Uniform("uOpacity"), mat.Opacity)

	// Back-side shells cull front faces and flip normals in the shader.
	// Front materials render both faces so generated winding never matters.
	if mat.Side == scene.SideBack {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
		gl.Uniform1f(r.program.Uniform("uFlipNormal"), -1)
	} else {
		gl.Disable(gl.CULL_FACE)
		gl.Uniform1f(r.program.Uniform("uFlipNormal"), 1)
	}

	gl.BindVertexArray(buf.vao)
	gl.DrawElements(gl.TRIANGLES, buf.indexCount, gl.UNSIGNED_INT, nil)
}

// upload lazily creates VAO/VBO/EBO for a mesh the first time it is drawn.
func (r *Renderer) upload(mesh *geometry.Mesh) *meshBuffers {
	if buf, ok := r.buffers[mesh]; ok {
		return buf
	}

	buf := &meshBuffers{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(unsafe.Sizeof(geometry.Vertex{})),
		gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(geometry.Vertex{}))

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.buffers[mesh] = buf
	logger.Debug("mesh uploaded",
		zap.Uint32("vao", buf.vao),
		zap.Int32("indices", buf.indexCount),
	)
	return buf
}

func (r *Renderer) deleteBuffers(buf *meshBuffers) {
	if buf.vao != 0 {
		gl.DeleteVertexArrays(1, &buf.vao)
	}
	if buf.vbo != 0 {
		gl.DeleteBuffers(1, &buf.vbo)
	}
	if buf.ebo != 0 {
		gl.DeleteBuffers(1, &buf.ebo)
	}
}

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 vWorldPos;
out vec3 vNormal;
out float vViewDepth;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;

	vec4 viewPos = uView * world;
	vViewDepth = -viewPos.z;
	gl_Position = uProj * viewPos;
}
`

const fragmentShaderSrc = `
#version 410 core

struct PointLight {
	vec3 position;
	vec3 color;
	float range;
};

in vec3 vWorldPos;
in vec3 vNormal;
in float vViewDepth;

uniform vec3 uCameraPos;
uniform vec3 uAmbient;
uniform vec3 uColor;
uniform vec3 uEmissive;
uniform float uRoughness;
uniform float uMetalness;
uniform float uOpacity;
uniform float uFlipNormal;
uniform vec3 uFogColor;
uniform float uFogDensity;
uniform PointLight uLights[2];

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal) * uFlipNormal;
	vec3 viewDir = normalize(uCameraPos - vWorldPos);

	// Double-sided: face the normal toward the viewer
	if (dot(n, viewDir) < 0.0) {
		n = -n;
	}

	vec3 color = uColor * uAmbient;
	float shininess = mix(64.0, 4.0, clamp(uRoughness, 0.0, 1.0));
	float specStrength = mix(0.08, 0.6, clamp(uMetalness, 0.0, 1.0));

	for (int i = 0; i < 2; i++) {
		vec3 toLight = uLights[i].position - vWorldPos;
		float dist = length(toLight);
		vec3 lightDir = toLight / dist;

		float att = 1.0 / (1.0 + pow(dist / uLights[i].range, 2.0));
		float diff = max(dot(n, lightDir), 0.0);

		vec3 halfway = normalize(lightDir + viewDir);
		float spec = pow(max(dot(n, halfway), 0.0), shininess) * specStrength;

		color += (uColor * diff + vec3(spec)) * uLights[i].color * att;
	}

	color += uEmissive;

	float fog = exp(-uFogDensity * uFogDensity * vViewDepth * vViewDepth);
	color = mix(uFogColor, color, clamp(fog, 0.0, 1.0));

	FragColor = vec4(color, uOpacity);
}
`
