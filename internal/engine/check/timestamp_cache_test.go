package check_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/core/ports/mocks"
	"go.trai.ch/fresh/internal/engine/check"
	"go.uber.org/mock/gomock"
)

func TestTimestampCache_MemoizesHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := mocks.NewMockFileSystem(ctrl)

	at := time.Unix(100, 0).UTC()
	mockFS.EXPECT().ModTimeUTC("src/main.go").Return(at, true).Times(1)

	cache := check.NewTimestampCache(mockFS)

	got1, ok1 := cache.GetTimestampUTC("src/main.go")
	require.True(t, ok1)
	assert.Equal(t, at, got1)

	// Second read is served from memory with no filesystem access.
	got2, ok2 := cache.GetTimestampUTC("src/main.go")
	require.True(t, ok2)
	assert.Equal(t, got1, got2)

	assert.Equal(t, 1, cache.Count())
}

func TestTimestampCache_MemoizesAbsence(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := mocks.NewMockFileSystem(ctrl)

	mockFS.EXPECT().ModTimeUTC("bin/app").Return(time.Time{}, false).Times(1)

	cache := check.NewTimestampCache(mockFS)

	_, ok := cache.GetTimestampUTC("bin/app")
	assert.False(t, ok)

	// Absence is obtained exactly once and cached as absent.
	_, ok = cache.GetTimestampUTC("bin/app")
	assert.False(t, ok)

	assert.Equal(t, 1, cache.Count())
}

func TestTimestampCache_CaseInsensitiveKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := mocks.NewMockFileSystem(ctrl)

	at := time.Unix(200, 0).UTC()
	mockFS.EXPECT().ModTimeUTC(gomock.Any()).Return(at, true).Times(1)

	cache := check.NewTimestampCache(mockFS)

	_, ok := cache.GetTimestampUTC("Src/Main.go")
	require.True(t, ok)

	// A differently cased spelling of the same path hits the same entry.
	got, ok := cache.GetTimestampUTC("src/main.go")
	require.True(t, ok)
	assert.Equal(t, at, got)

	assert.Equal(t, 1, cache.Count())
}

func TestTimestampCache_CleansKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := mocks.NewMockFileSystem(ctrl)

	mockFS.EXPECT().ModTimeUTC(gomock.Any()).Return(time.Unix(300, 0).UTC(), true).Times(1)

	cache := check.NewTimestampCache(mockFS)

	_, _ = cache.GetTimestampUTC("src/./main.go")
	_, _ = cache.GetTimestampUTC("src/main.go")

	assert.Equal(t, 1, cache.Count())
}

func TestTimestampCache_DistinctPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := mocks.NewMockFileSystem(ctrl)

	mockFS.EXPECT().ModTimeUTC("a.go").Return(time.Unix(1, 0).UTC(), true)
	mockFS.EXPECT().ModTimeUTC("b.go").Return(time.Unix(2, 0).UTC(), true)

	cache := check.NewTimestampCache(mockFS)

	atA, _ := cache.GetTimestampUTC("a.go")
	atB, _ := cache.GetTimestampUTC("b.go")

	assert.True(t, atA.Before(atB))
	assert.Equal(t, 2, cache.Count())
}
