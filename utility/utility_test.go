package utility_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitegz/sitegz/utility"
)

func TestGetFileExtension(t *testing.T) {
	assert.Equal(t, "html", utility.GetFileExtension("public/index.html"))
	assert.Equal(t, "gz", utility.GetFileExtension("index.html.gz"))
	assert.Equal(t, "", utility.GetFileExtension("LICENSE"))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, utility.Min(3, 5))
	assert.Equal(t, 5, utility.Max(3, 5))
}

func TestFastCopy(t *testing.T) {
	source := strings.Repeat("sitegz", 1<<16)
	var dst bytes.Buffer
	n, err := utility.FastCopy(&dst, strings.NewReader(source))
	require.NoError(t, err)
	assert.Equal(t, int64(len(source)), n)
	assert.Equal(t, source, dst.String())
}
