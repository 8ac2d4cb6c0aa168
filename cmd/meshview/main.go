// Package main is the entry point for the meshkit demo viewer. It
// builds a geometry buffer off the main thread, uploads it on the GL
// thread through the mesh gateway, and renders it.
package main

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/internal/engine/mesh"
	"github.com/Faultbox/meshkit/internal/engine/shader"
	"github.com/Faultbox/meshkit/internal/engine/window"
	"github.com/Faultbox/meshkit/internal/logger"
	"github.com/Faultbox/meshkit/pkg/geometry"
	"github.com/Faultbox/meshkit/pkg/vecmath"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Meshkit Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// The buffer is a plain value with no engine resources, so it can
	// be built on a worker goroutine while the window comes up.
	bufCh := make(chan *geometry.Buffer, 1)
	go func() {
		buf := buildSphere(cfg.Viewer.SphereRings, cfg.Viewer.SphereSegments)
		if cfg.Viewer.NarrowIndices {
			buf.IndexFormat = geometry.IndexFormatUint16
		} else {
			buf.IndexFormat = geometry.IndexFormatUint32
		}
		bufCh <- buf
	}()

	win, err := window.New(window.Config{
		Title:      "Meshkit Viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	buf := <-bufCh
	if err := buf.Validate(); err != nil {
		logger.Error("demo buffer invalid", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("demo buffer built",
		zap.String("name", buf.Name),
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("triangles", buf.TriangleCount()),
	)

	tracker := &mesh.Ref{}
	buf.Tracker = tracker

	// From here on we are on the GL thread: upload is legal.
	m, err := mesh.Upload(buf)
	if err != nil {
		logger.Error("mesh upload failed", zap.Error(err))
		os.Exit(1)
	}
	defer m.Delete()

	if h, ok := tracker.Handle(); ok {
		logger.Sugar.Debugf("host mesh handle: %+v", h)
	}

	// Round-trip check: the host mesh snapshots back into a valid
	// engine-independent buffer.
	snap, err := mesh.Snapshot(m)
	if err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
	if err := snap.Validate(); err != nil {
		logger.Error("snapshot buffer invalid", zap.Error(err))
		os.Exit(1)
	}

	program, err := shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		logger.Error("shader compile failed", zap.Error(err))
		os.Exit(1)
	}
	defer gl.DeleteProgram(program)

	locMVP := shader.MustGetUniform(program, "uMVP")
	locModel := shader.MustGetUniform(program, "uModel")
	locLight := shader.GetUniform(program, "uLightDir")

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	if cfg.Viewer.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	center := buf.Bounds.Center()
	radius := buf.Bounds.Size().Length() / 2
	if radius < 0.001 {
		radius = 1
	}
	eye := center.Add(vecmath.Vec3{Y: radius * 0.6, Z: radius * 2.5})
	spin := cfg.Viewer.SpinDegPerSec * math32.Pi / 180

	running := true
	for running {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}

		w, h := win.GetSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.08, 0.09, 0.11, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		t := float32(sdl.GetTicks64()) / 1000
		model := vecmath.RotateY(spin * t)
		view := vecmath.LookAt(eye, center, vecmath.Vec3{Y: 1})
		proj := vecmath.Perspective(math32.Pi/4, float32(w)/float32(h), 0.1, radius*100)
		mvp := proj.Mul(view).Mul(model)

		gl.UseProgram(program)
		gl.UniformMatrix4fv(locMVP, 1, false, mvp.Ptr())
		gl.UniformMatrix4fv(locModel, 1, false, model.Ptr())
		gl.Uniform3f(locLight, -0.5, -1, -0.3)

		m.Draw()
		win.SwapBuffers()
	}

	logger.Info("viewer closed normally")
}
