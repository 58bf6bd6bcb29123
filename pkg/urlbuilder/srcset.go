package urlbuilder

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-ixtags/pkg/params"
)

// Density is a srcset pixel density descriptor such as "2x".
func Density(resolution float64) string {
	return decimal.NewFromFloat(resolution).String() + "x"
}

// BuildSrcset renders one "URL {resolution}x" candidate per resolution,
// comma separated. Resolution 1 leaves dpr as supplied; every other
// resolution sets dpr to the resolution.
func BuildSrcset(b Builder, path string, p params.Params, resolutions []float64) string {
	if b == nil || len(resolutions) == 0 {
		return ""
	}

	candidates := make([]string, 0, len(resolutions))
	for _, resolution := range resolutions {
		current := p
		if resolution != 1 {
			current = params.Merge(p, params.Params{"dpr": decimal.NewFromFloat(resolution)})
		}
		candidates = append(candidates, b.BuildURL(path, current)+" "+Density(resolution))
	}
	return strings.Join(candidates, ",")
}
