package twin

import (
	"errors"
	"fmt"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/emission"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoSelection = errors.New("no device kind selected")
	ErrOutOfBounds = errors.New("cell is outside the grid")
	ErrOccupied    = errors.New("cell is occupied")
	ErrUnknownKind = errors.New("unknown device kind")
)

// Scenario is the mutable state behind the interactive views: the placed
// devices in insertion order, the selected kind and the wind. It is not safe
// for concurrent use.
type Scenario struct {
	cfg      Config
	sources  []emission.Source
	devices  []capture.Device
	selected capture.Kind
	wind     core.Wind
	log      logrus.FieldLogger

	result *Result
}

// NewScenario builds a scenario seeded from the config's saved layout.
// Layout devices that break the placement rules are dropped and logged.
func NewScenario(cfg Config, log logrus.FieldLogger) *Scenario {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Scenario{
		cfg:     cfg,
		sources: cfg.SourceList(),
		wind:    cfg.Layout.Wind,
		log:     log,
	}
	for _, d := range cfg.Layout.Devices {
		if err := s.add(d); err != nil {
			log.WithError(err).WithFields(logrus.Fields{"x": d.X, "y": d.Y, "kind": d.Kind}).
				Warn("skipping layout device")
		}
	}
	return s
}

// Config returns the active configuration.
func (s *Scenario) Config() Config { return s.cfg }

// Sources returns the emission inventory.
func (s *Scenario) Sources() []emission.Source { return s.sources }

// Devices returns a copy of the placed devices in placement order.
func (s *Scenario) Devices() []capture.Device {
	return append([]capture.Device(nil), s.devices...)
}

// Wind returns the current wind.
func (s *Scenario) Wind() core.Wind { return s.wind }

// SetWind changes the wind.
func (s *Scenario) SetWind(w core.Wind) {
	if w == s.wind {
		return
	}
	s.wind = w
	s.invalidate()
}

// Selected returns the kind the next placement will use, if any.
func (s *Scenario) Selected() (capture.Kind, bool) {
	return s.selected, s.selected != ""
}

// Select picks the kind for subsequent placements. Selecting the current
// kind again clears the selection.
func (s *Scenario) Select(kind capture.Kind) error {
	if _, ok := s.cfg.Devices.Lookup(kind); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if s.selected == kind {
		s.selected = ""
		return nil
	}
	s.selected = kind
	return nil
}

// Place adds a device of the selected kind at (x, y).
func (s *Scenario) Place(x, y int) error {
	if s.selected == "" {
		return ErrNoSelection
	}
	d := capture.Device{X: x, Y: y, Kind: s.selected}
	if err := s.add(d); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"x": x, "y": y, "kind": d.Kind}).
			Warn("cannot place device")
		return err
	}
	s.log.WithFields(logrus.Fields{"x": x, "y": y, "kind": d.Kind, "devices": len(s.devices)}).
		Debug("device placed")
	return nil
}

// Undo removes the most recently placed device.
func (s *Scenario) Undo() bool {
	if len(s.devices) == 0 {
		return false
	}
	s.devices = s.devices[:len(s.devices)-1]
	s.invalidate()
	return true
}

// Reset clears devices, selection and wind.
func (s *Scenario) Reset() {
	s.devices = nil
	s.selected = ""
	s.wind = core.Calm
	s.invalidate()
}

// Reconfigure swaps in a new configuration, keeping the wind and the devices
// that still fit. The selection is cleared when its kind disappears.
func (s *Scenario) Reconfigure(cfg Config) {
	placed := s.devices
	s.cfg = cfg
	s.sources = cfg.SourceList()
	s.devices = nil
	if _, ok := cfg.Devices.Lookup(s.selected); !ok {
		s.selected = ""
	}
	for _, d := range placed {
		if err := s.add(d); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"x": d.X, "y": d.Y, "kind": d.Kind}).
				Warn("dropping device after reconfigure")
		}
	}
	s.invalidate()
	s.log.WithFields(logrus.Fields{"size": cfg.Dispersion.Size, "devices": len(s.devices)}).Info("scenario reconfigured")
}

// DeviceAt returns the device on (x, y), if any.
func (s *Scenario) DeviceAt(x, y int) (capture.Device, bool) {
	for _, d := range s.devices {
		if d.X == x && d.Y == y {
			return d, true
		}
	}
	return capture.Device{}, false
}

// Occupied reports whether a device or a building sits on (x, y).
func (s *Scenario) Occupied(x, y int) bool {
	if _, ok := s.DeviceAt(x, y); ok {
		return true
	}
	_, ok := emission.BlockingAt(s.sources, x, y)
	return ok
}

// Evaluate returns the mitigated field and statistics for the current state.
func (s *Scenario) Evaluate() Result {
	if s.result == nil {
		r := Evaluate(s.cfg, s.sources, s.devices, s.wind)
		s.result = &r
	}
	return *s.result
}

func (s *Scenario) add(d capture.Device) error {
	n := s.cfg.Dispersion.Size
	if d.X < 0 || d.X >= n || d.Y < 0 || d.Y >= n {
		return ErrOutOfBounds
	}
	if _, ok := s.cfg.Devices.Lookup(d.Kind); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
	if s.Occupied(d.X, d.Y) {
		return ErrOccupied
	}
	s.devices = append(s.devices, d)
	s.invalidate()
	return nil
}

func (s *Scenario) invalidate() { s.result = nil }
