package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staticize"
	"staticize/internal/analyze"
	"staticize/options"
	"staticize/shape"
)

func TestCheckOptionsPackage(t *testing.T) {
	t.Parallel()

	a := analyze.NewAnalyzer(staticize.New(options.FeatureNone))

	report, err := a.Check("staticize/options")
	require.NoError(t, err)
	require.NotEmpty(t, report.Findings)

	var feature *analyze.Finding
	for i := range report.Findings {
		if report.Findings[i].Name == "FeatureEnum" {
			feature = &report.Findings[i]
		}
	}

	require.NotNil(t, feature, "FeatureEnum must be among the exported types")
	require.NoError(t, feature.Err)

	assert.True(t, feature.Static.Equal(shape.Prim(shape.KindInt)),
		"FeatureEnum is a named int, got %s", feature.Static)
	assert.Equal(t, "staticize/options.FeatureEnum", feature.String())
	assert.True(t, report.Ok())
}

func TestCheckRejectsBadPatterns(t *testing.T) {
	t.Parallel()

	a := analyze.NewAnalyzer(staticize.New(options.FeatureAll))

	_, err := a.Check("staticize/does-not-exist")
	assert.Error(t, err)
}
