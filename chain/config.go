package chain

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/viam-labs/planararm/spatialmath"
)

// TranslationConfig represents a translation in JSON with lowercase fields.
type TranslationConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ParseConfig converts a TranslationConfig into an r3.Vector.
func (t TranslationConfig) ParseConfig() r3.Vector {
	return r3.Vector{X: t.X, Y: t.Y, Z: t.Z}
}

// JointConfig describes one joint of the chain: the length of the link it
// carries and its rotation axis. An empty axis defaults to z, the planar
// convention.
type JointConfig struct {
	Length float64 `json:"length"`
	Axis   string  `json:"axis,omitempty"`
}

// Config describes the fixed geometry of a chain.
type Config struct {
	Name        string            `json:"name"`
	Base        TranslationConfig `json:"base"`
	JointRadius float64           `json:"joint_radius"`
	Joints      []JointConfig     `json:"joints"`
}

// Validate checks the whole config, aggregating every problem found rather
// than stopping at the first.
func (cfg *Config) Validate() error {
	var errAll error
	if !finiteNonnegative(cfg.JointRadius) {
		multierr.AppendInto(&errAll, NewBadGeometryError("joint_radius", cfg.JointRadius))
	}
	for _, v := range []float64{cfg.Base.X, cfg.Base.Y, cfg.Base.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			multierr.AppendInto(&errAll, spatialmath.NewNonFiniteValueError("base translation component", v))
		}
	}
	if len(cfg.Joints) == 0 {
		multierr.AppendInto(&errAll, errors.New("chain must have at least one joint"))
	}
	for i, jc := range cfg.Joints {
		if !finiteNonnegative(jc.Length) {
			multierr.AppendInto(&errAll, NewBadGeometryError(fmt.Sprintf("joints[%d].length", i), jc.Length))
		}
		if jc.Axis != "" {
			if _, err := spatialmath.ParseAxis(jc.Axis); err != nil {
				multierr.AppendInto(&errAll, errors.Wrapf(err, "joints[%d]", i))
			}
		}
	}
	return errAll
}

// UnmarshalConfigJSON parses the given JSON data into a chain.
func UnmarshalConfigJSON(jsonData []byte) (*Chain, error) {
	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal chain config json")
	}
	return New(cfg)
}

// NewChainFromJSONFile reads a chain config from the given JSON file.
func NewChainFromJSONFile(filename string) (*Chain, error) {
	jsonData, err := os.ReadFile(filename) //nolint:gosec
	if err != nil {
		return nil, errors.Wrap(err, "failed to read chain config file")
	}
	return UnmarshalConfigJSON(jsonData)
}

func finiteNonnegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
