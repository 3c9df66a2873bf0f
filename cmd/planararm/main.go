// Demo that solves a planar arm's forward kinematics and optionally renders
// the result to a PNG.
package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/viam-labs/planararm/chain"
	"github.com/viam-labs/planararm/render"
)

var logger = golog.NewDevelopmentLogger("planararm")

func main() {
	var (
		configFile = flag.String("config", "", "path to a chain config JSON file; omit for the built-in demo arm")
		anglesFlag = flag.String("angles", "30,-10,0,2", "comma-separated joint angles in degrees")
		outFile    = flag.String("out", "", "write a PNG rendering of the solved chain to this file")
	)
	flag.Parse()

	if err := realMain(*configFile, *anglesFlag, *outFile); err != nil {
		logger.Fatal(err)
	}
}

func realMain(configFile, anglesFlag, outFile string) error {
	var c *chain.Chain
	var err error
	if configFile != "" {
		c, err = chain.NewChainFromJSONFile(configFile)
	} else {
		c, err = chain.New(demoConfig())
	}
	if err != nil {
		return err
	}

	angles, err := parseAngles(anglesFlag)
	if err != nil {
		return err
	}

	sol, err := c.Solve(angles)
	if err != nil {
		return err
	}

	for i, frame := range sol.Frames[1:] {
		t := frame.Translation()
		logger.Infof("frame %d origin (%.4f, %.4f, %.4f)", i+1, t.X, t.Y, t.Z)
	}
	e := sol.EndEffector
	logger.Infof("end effector (%.4f, %.4f, %.4f)", e.X, e.Y, e.Z)

	if outFile != "" {
		img, err := render.Plot(c, sol, render.Options{})
		if err != nil {
			return err
		}
		if err := render.SavePNG(outFile, img); err != nil {
			return err
		}
		logger.Infow("wrote rendering", "file", outFile)
	}
	return nil
}

// demoConfig is the built-in three-link arm: lengths 5, 8 and 3 plus a
// zero-length tool stub, hub radius 0.4, base at (3,2,0).
func demoConfig() chain.Config {
	return chain.Config{
		Name:        "demo-arm",
		Base:        chain.TranslationConfig{X: 3, Y: 2},
		JointRadius: 0.4,
		Joints: []chain.JointConfig{
			{Length: 5},
			{Length: 8},
			{Length: 3},
			{Length: 0},
		},
	}
}

func parseAngles(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	angles := make([]float64, 0, len(parts))
	for _, part := range parts {
		a, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid joint angle %q", part)
		}
		angles = append(angles, a)
	}
	return angles, nil
}
