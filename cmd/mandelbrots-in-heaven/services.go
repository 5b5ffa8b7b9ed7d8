package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/mandelbrots-in-heaven/audio"
	"github.com/lixenwraith/mandelbrots-in-heaven/core"
	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
)

// termService owns the screen: alternate screen, mouse reporting, crash registration
type termService struct {
	term terminal.Terminal
}

func (s *termService) Name() string           { return "terminal" }
func (s *termService) Dependencies() []string { return nil }

func (s *termService) Start() error {
	if err := s.term.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.RegisterTerminal(s.term)
	if err := s.term.SetMouseMode(terminal.MouseModeClick); err != nil {
		s.term.Fini()
		return fmt.Errorf("enable mouse: %w", err)
	}
	return nil
}

func (s *termService) Stop() { s.term.Fini() }

// audioService is optional: a missing device is logged and the explorer runs silent
type audioService struct {
	player *audio.Player
}

func (s *audioService) Name() string           { return "audio" }
func (s *audioService) Dependencies() []string { return []string{"terminal"} }

func (s *audioService) Start() error {
	if err := s.player.Init(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	return nil
}

func (s *audioService) Stop() { s.player.Close() }
