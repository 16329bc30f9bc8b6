package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convex/geom"
)

// This converts pointers into random readable names. It leaks memory but
// generates the names lazily, so it's not a problem unless you're actually
// using it. This is helpful for telling polygons apart in logs, where they
// have no identity other than their address.

var (
	memoLock sync.Mutex
	memo     map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	memoLock.Lock()
	defer memoLock.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// One line summary of a polygon for terminal output. The name is colored by
// the current orientation of the vertices: green for counterclockwise, cyan for
// clockwise, and red if a transform has flattened it.
func Describe(poly *geom.ConvexPolygon) string {
	name := Name(poly)
	area := poly.SignedArea()
	switch {
	case geom.Equal(area, 0):
		name = aurora.Red(name).String()
	case area > 0:
		name = aurora.Green(name).String()
	default:
		name = aurora.Cyan(name).String()
	}
	return fmt.Sprintf("%s <n: %d, area: %.4g>", name, poly.Len(), poly.Area())
}
