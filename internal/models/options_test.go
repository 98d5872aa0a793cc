package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogs(t *testing.T) {
	weathers := WeatherOptions()
	moods := MoodOptions()

	assert.Len(t, weathers, 8)
	assert.Len(t, moods, 8)

	for _, opt := range append(weathers, moods...) {
		assert.NotEmpty(t, opt.Value)
		assert.NotEmpty(t, opt.Label)
		assert.NotEmpty(t, opt.Icon)
	}
}

func TestCatalogs_ReturnCopies(t *testing.T) {
	weathers := WeatherOptions()
	weathers[0].Value = "acid rain"

	assert.Equal(t, "rainy", WeatherOptions()[0].Value)
	_, ok := FindWeather("acid rain")
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	opt, ok := FindWeather("clear night")
	assert.True(t, ok)
	assert.Equal(t, "Clear Night", opt.Label)

	opt, ok = FindMood("creative")
	assert.True(t, ok)
	assert.Equal(t, "🎨", opt.Icon)

	_, ok = FindMood("rainy")
	assert.False(t, ok)
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, GenericFailureMessage, FailureMessage(nil))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
