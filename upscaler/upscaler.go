// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package upscaler implements the upscaler stage's technology selection
// and jitter sequence, shared by whichever concrete UpscalerTechnology a
// platform supports.
package upscaler

import "github.com/go-gl/mathgl/mgl32"

// Technology identifies a concrete upscaling implementation.
type Technology int

const (
	// TechnologyDLSS is only ever selected when the active backend is
	// backend/dx12 and advertises the capability; there is no Vulkan path
	// for it in this engine.
	TechnologyDLSS Technology = iota
	TechnologyFSR
	// TechnologyTAAU is the platform-independent fallback: temporal
	// anti-aliasing upscaling using only the motion vectors and jitter
	// this package already produces.
	TechnologyTAAU
)

func (t Technology) String() string {
	switch t {
	case TechnologyDLSS:
		return "DLSS"
	case TechnologyFSR:
		return "FSR"
	case TechnologyTAAU:
		return "TAAU"
	default:
		return "unknown"
	}
}

// Quality is a user-facing upscaling quality preset, each implying a
// render-resolution scale factor relative to the output resolution.
type Quality int

const (
	QualityPerformance Quality = iota
	QualityBalanced
	QualityQuality
	QualityNative
)

// ScaleFactor returns the render-resolution scale for q (1.0 = native).
func (q Quality) ScaleFactor() float32 {
	switch q {
	case QualityPerformance:
		return 0.5
	case QualityBalanced:
		return 0.59
	case QualityQuality:
		return 0.67
	case QualityNative:
		return 1.0
	default:
		return 1.0
	}
}

// PlatformCapability reports which upscaling technologies the active
// backend can drive, so Manager can pick a platform default.
type PlatformCapability interface {
	SupportsDLSS() bool
	SupportsFSR() bool
}

// Manager selects and owns the active upscaling technology and computes
// the per-frame jitter offset passes.UpscalerPass consumes.
type Manager struct {
	technology Technology
	quality    Quality
	frameIndex uint32
}

// NewManager selects a platform default: DLSS when available, otherwise
// FSR, otherwise the always-available TAAU fallback.
func NewManager(cap PlatformCapability, quality Quality) *Manager {
	m := &Manager{quality: quality}
	switch {
	case cap != nil && cap.SupportsDLSS():
		m.technology = TechnologyDLSS
	case cap != nil && cap.SupportsFSR():
		m.technology = TechnologyFSR
	default:
		m.technology = TechnologyTAAU
	}
	return m
}

// Technology returns the selected upscaling technology.
func (m *Manager) Technology() Technology { return m.technology }

// SetTechnology overrides the selected technology, e.g. from a settings
// menu.
func (m *Manager) SetTechnology(t Technology) { m.technology = t }

// Quality returns the selected quality preset.
func (m *Manager) Quality() Quality { return m.quality }

// RenderResolution returns the input resolution the engine should render
// at for outputW x outputH under the current quality preset.
func (m *Manager) RenderResolution(outputW, outputH uint32) (renderW, renderH uint32) {
	scale := m.quality.ScaleFactor()
	renderW = uint32(float32(outputW) * scale)
	renderH = uint32(float32(outputH) * scale)
	if renderW == 0 {
		renderW = 1
	}
	if renderH == 0 {
		renderH = 1
	}
	return renderW, renderH
}

// halton returns the base-b Halton sequence value for index i (1-based).
func halton(i, b int) float32 {
	var f, result float32 = 1, 0
	for i > 0 {
		f /= float32(b)
		result += f * float32(i%b)
		i /= b
	}
	return result
}

// NextJitter advances the frame counter and returns the next sub-pixel
// jitter offset in [-0.5, 0.5], drawn from the Halton(2,3) sequence
// modulo 16 samples, the pattern both TAAU and the vendor upscalers
// expect for temporal accumulation.
func (m *Manager) NextJitter() mgl32.Vec2 {
	m.frameIndex++
	i := int(m.frameIndex%16) + 1
	return mgl32.Vec2{
		halton(i, 2) - 0.5,
		halton(i, 3) - 0.5,
	}
}
