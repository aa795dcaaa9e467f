package s3client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	t.Run(`valid path check`, func(t *testing.T) {
		bucket, name, ok := parsePath("s3://candidate-cvs/cv-1-2.pdf")
		require.True(t, ok)
		require.Equal(t, "candidate-cvs", bucket)
		require.Equal(t, "cv-1-2.pdf", name)
	})

	t.Run(`invalid path check`, func(t *testing.T) {
		for _, path := range []string{"", "uploads/cvs/cv-1.pdf", "s3://", "s3://bucket", "s3://bucket/", "s3:///name"} {
			_, _, ok := parsePath(path)
			require.False(t, ok, path)
		}
	})
}
