package models

// Option is one selectable weather condition or mood.
type Option struct {
	Value string
	Label string
	Icon  string
}

var weatherOptions = [...]Option{
	{Value: "rainy", Label: "Rainy", Icon: "🌧️"},
	{Value: "foggy", Label: "Foggy", Icon: "🌫️"},
	{Value: "cloudy", Label: "Cloudy", Icon: "☁️"},
	{Value: "sunny", Label: "Sunny", Icon: "☀️"},
	{Value: "snowy", Label: "Snowy", Icon: "❄️"},
	{Value: "stormy", Label: "Stormy", Icon: "⛈️"},
	{Value: "windy", Label: "Windy", Icon: "💨"},
	{Value: "clear night", Label: "Clear Night", Icon: "🌙"},
}

var moodOptions = [...]Option{
	{Value: "focused", Label: "Focused", Icon: "🎯"},
	{Value: "calm", Label: "Calm", Icon: "🧘"},
	{Value: "melancholic", Label: "Melancholic", Icon: "🫧"},
	{Value: "nostalgic", Label: "Nostalgic", Icon: "🕰️"},
	{Value: "peaceful", Label: "Peaceful", Icon: "🌿"},
	{Value: "dreamy", Label: "Dreamy", Icon: "✨"},
	{Value: "tired", Label: "Tired", Icon: "🌙"},
	{Value: "creative", Label: "Creative", Icon: "🎨"},
}

// WeatherOptions returns a copy of the weather catalog in display order.
func WeatherOptions() []Option {
	out := make([]Option, len(weatherOptions))
	copy(out, weatherOptions[:])
	return out
}

// MoodOptions returns a copy of the mood catalog in display order.
func MoodOptions() []Option {
	out := make([]Option, len(moodOptions))
	copy(out, moodOptions[:])
	return out
}

func FindWeather(value string) (Option, bool) {
	return find(weatherOptions[:], value)
}

func FindMood(value string) (Option, bool) {
	return find(moodOptions[:], value)
}

func find(options []Option, value string) (Option, bool) {
	for _, opt := range options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}
