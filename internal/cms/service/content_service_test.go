package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "landing-page", Slugify("Landing Page"))
	assert.Equal(t, "blog-post-v2", Slugify("  Blog Post V2 "))
	assert.Equal(t, "faq", Slugify("FAQ"))
}

func TestBumpPatch(t *testing.T) {
	next, err := BumpPatch("1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", next)

	next, err = BumpPatch("2.3.9")
	require.NoError(t, err)
	assert.Equal(t, "2.3.10", next)
}

func TestBumpPatch_Invalid(t *testing.T) {
	for _, v := range []string{"", "1", "1.0", "abc", "1.0.x"} {
		_, err := BumpPatch(v)
		assert.Error(t, err, "version %q", v)
	}
}
