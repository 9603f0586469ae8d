package config

import "sync"

const (
	MinRenderDistance = 2
	MaxRenderDistance = 64
)

// RenderSettings holds values changed at runtime from the keyboard.
type RenderSettings struct {
	mu             sync.RWMutex
	renderDistance int // in chunks
	fpsLimit       int // 0 is unlimited
	showProfile    bool
}

// NewRenderSettings starts from the loaded configuration.
func NewRenderSettings(cfg *Config) *RenderSettings {
	s := &RenderSettings{}
	s.SetRenderDistance(cfg.Render.RenderDistance)
	s.SetFPSLimit(cfg.Window.FPSLimit)
	return s
}

// RenderDistance returns the current render distance in chunks
func (s *RenderSettings) RenderDistance() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renderDistance
}

// SetRenderDistance sets the render distance in chunks
func (s *RenderSettings) SetRenderDistance(distance int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderDistance = min(max(distance, MinRenderDistance), MaxRenderDistance)
}

// FarPlane is the camera far plane matching the render distance.
func (s *RenderSettings) FarPlane() float32 {
	return float32(s.RenderDistance() * 16)
}

func (s *RenderSettings) FPSLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fpsLimit
}

func (s *RenderSettings) SetFPSLimit(limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fpsLimit = max(limit, 0)
}

// ToggleProfile flips the periodic timing output and returns the new state.
func (s *RenderSettings) ToggleProfile() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showProfile = !s.showProfile
	return s.showProfile
}

func (s *RenderSettings) ShowProfile() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showProfile
}
