package weather

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// Payload is the current.json response of WeatherAPI.com as consumed by the panel.
// Every field is optional: a missing field decodes to nil and renders empty.
type Payload struct {
	Location *Location `json:"location"`
	Current  *Current  `json:"current"`
}

// Location is the "location" object of the payload.
type Location struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

// Current is the "current" object of the payload.
type Current struct {
	TempC      *float64       `json:"temp_c"`
	FeelslikeC *float64       `json:"feelslike_c"`
	Humidity   *float64       `json:"humidity"`
	WindKph    *float64       `json:"wind_kph"`
	Cloud      *float64       `json:"cloud"`
	IsDay      *int           `json:"is_day"` // 1 = day, anything else = night
	Condition  *ConditionInfo `json:"condition"`
}

// ConditionInfo holds the human readable condition and its icon.
type ConditionInfo struct {
	Text *string `json:"text"`
	// Icon is protocol-relative, e.g. "//cdn.weatherapi.com/weather/64x64/day/113.png".
	Icon *string `json:"icon"`
}

func (p *Payload) current() *Current {
	if p == nil {
		return nil
	}
	return p.Current
}

func (p *Payload) location() *Location {
	if p == nil {
		return nil
	}
	return p.Location
}

func (p *Payload) condition() *ConditionInfo {
	if c := p.current(); c != nil {
		return c.Condition
	}
	return nil
}

// TempC returns the temperature in °C, if present.
func (p *Payload) TempC() *float64 {
	if c := p.current(); c != nil {
		return c.TempC
	}
	return nil
}

// FeelslikeC returns the "feels like" temperature in °C, if present.
func (p *Payload) FeelslikeC() *float64 {
	if c := p.current(); c != nil {
		return c.FeelslikeC
	}
	return nil
}

// Humidity returns the relative humidity in percent, if present.
func (p *Payload) Humidity() *float64 {
	if c := p.current(); c != nil {
		return c.Humidity
	}
	return nil
}

// WindKph returns the wind speed in km/h, if present.
func (p *Payload) WindKph() *float64 {
	if c := p.current(); c != nil {
		return c.WindKph
	}
	return nil
}

// Cloud returns the cloud cover in percent, if present.
func (p *Payload) Cloud() *float64 {
	if c := p.current(); c != nil {
		return c.Cloud
	}
	return nil
}

// IsDay reports the daytime flag. ok is false when the payload does not carry it.
func (p *Payload) IsDay() (day bool, ok bool) {
	c := p.current()
	if c == nil || c.IsDay == nil {
		return false, false
	}
	return *c.IsDay == 1, true
}

// ConditionText returns the condition text or "".
func (p *Payload) ConditionText() string {
	if c := p.condition(); c != nil && c.Text != nil {
		return *c.Text
	}
	return ""
}

// ConditionIcon returns the raw icon reference or "".
func (p *Payload) ConditionIcon() string {
	if c := p.condition(); c != nil && c.Icon != nil {
		return *c.Icon
	}
	return ""
}

// LocationName returns the location name or "".
func (p *Payload) LocationName() string {
	if l := p.location(); l != nil && l.Name != nil {
		return *l.Name
	}
	return ""
}

// Country returns the location country or "".
func (p *Payload) Country() string {
	if l := p.location(); l != nil && l.Country != nil {
		return *l.Country
	}
	return ""
}
