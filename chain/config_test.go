package chain

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{
		JointRadius: -1,
		Base:        TranslationConfig{X: math.Inf(1)},
		Joints: []JointConfig{
			{Length: 5},
			{Length: -2},
			{Length: 3, Axis: "w"},
		},
	}
	err := cfg.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	// every problem is reported, not just the first
	test.That(t, err.Error(), test.ShouldContainSubstring, "joint_radius")
	test.That(t, err.Error(), test.ShouldContainSubstring, "base translation component")
	test.That(t, err.Error(), test.ShouldContainSubstring, "joints[1].length")
	test.That(t, err.Error(), test.ShouldContainSubstring, "invalid rotation axis")

	_, err = New(cfg)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "invalid chain config")
}

func TestConfigValidateNoJoints(t *testing.T) {
	cfg := Config{JointRadius: 0.4}
	err := cfg.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "at least one joint")
}

func TestUnmarshalConfigJSON(t *testing.T) {
	jsonData := []byte(`{
		"name": "demo-arm",
		"base": {"x": 3, "y": 2},
		"joint_radius": 0.4,
		"joints": [
			{"length": 5},
			{"length": 8, "axis": "z"},
			{"length": 3},
			{"length": 0}
		]
	}`)
	c, err := UnmarshalConfigJSON(jsonData)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Name(), test.ShouldEqual, "demo-arm")
	test.That(t, c.DoF(), test.ShouldEqual, 4)
	test.That(t, c.Base(), test.ShouldResemble, r3.Vector{X: 3, Y: 2})
	test.That(t, c.JointRadius(), test.ShouldEqual, 0.4)
	test.That(t, c.LinkLengths(), test.ShouldResemble, []float64{5, 8, 3, 0})
}

func TestUnmarshalConfigJSONBadData(t *testing.T) {
	_, err := UnmarshalConfigJSON([]byte(`{"joints": [`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to unmarshal")

	_, err = UnmarshalConfigJSON([]byte(`{"joint_radius": 0.4, "joints": [{"length": 5, "axis": "q"}]}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "invalid rotation axis")
}

func TestNewChainFromJSONFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "arm.json")
	jsonData := []byte(`{"name": "file-arm", "joint_radius": 0.4, "joints": [{"length": 5}, {"length": 8}]}`)
	test.That(t, os.WriteFile(filename, jsonData, 0o600), test.ShouldBeNil)

	c, err := NewChainFromJSONFile(filename)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Name(), test.ShouldEqual, "file-arm")

	_, err = NewChainFromJSONFile(filepath.Join(t.TempDir(), "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to read")
}
