package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/convex/vec"
	"github.com/pkg/errors"
)

// Read point lists from in. Each line is a point in the form "x y", and
// polygons are separated by one or more blank lines. Lines starting with # are
// comments.
func readPolygons(in io.Reader) ([][]vec.Point, error) {
	var polygons [][]vec.Point
	var points []vec.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (vec.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return vec.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return vec.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return vec.Point{}, errors.Wrap(err, "y")
	}
	return vec.Point{X: x, Y: y}, nil
}
