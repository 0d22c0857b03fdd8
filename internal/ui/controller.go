// Package ui holds the state of the weather panel shared by the terminal and
// web front ends. A Controller is not safe for concurrent use; it belongs to
// the interaction loop that owns the widgets.
package ui

import (
	"fmt"
	"strings"

	"github.com/Nazarious-ucu/weather-app/internal/models"
)

type State int

const (
	StateWelcome State = iota
	StateLoading
	StateResult
	StateError
)

const (
	Title = "Weather App"

	TriggerIdleLabel    = "Get Weather"
	TriggerLoadingLabel = "Loading..."
	InputLabel          = "Enter City:"

	WelcomeHeading = "Welcome to Weather App"
	WelcomeText    = "Enter a city name above and click 'Get Weather' to see current conditions"
	LoadingText    = "Fetching weather data..."

	WarningTitle = "Input Required"
	WarningText  = "Please enter a city name"

	ErrorHeading = "Error"
	ErrorText    = "Unable to fetch weather data. Please check the city name and try again."
	ErrorTitle   = "Error"
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateLoading:
		return "loading"
	case StateResult:
		return "result"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

type Controller struct {
	iconTemplate string

	state   State
	city    string
	weather models.Weather
	warning string
	dialog  string
}

func NewController(iconTemplate string) *Controller {
	return &Controller{iconTemplate: iconTemplate}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) TriggerEnabled() bool { return c.state != StateLoading }

// Submit validates input and, when a fetch may start, moves to loading and
// returns the trimmed city. Blank input only raises the warning.
func (c *Controller) Submit(input string) (string, bool) {
	if !c.TriggerEnabled() {
		return "", false
	}

	city := strings.TrimSpace(input)
	if city == "" {
		c.warning = WarningText
		return "", false
	}

	c.warning = ""
	c.dialog = ""
	c.city = city
	c.weather = models.Weather{}
	c.state = StateLoading
	return city, true
}

// Complete applies the outcome of the fetch started by the last Submit.
func (c *Controller) Complete(w models.Weather, err error) {
	if c.state != StateLoading {
		return
	}
	if err != nil {
		c.weather = models.Weather{}
		c.state = StateError
		// Names the city that was looked up, without surrounding blanks.
		c.dialog = fmt.Sprintf("Could not retrieve weather for %q", c.city)
		return
	}
	c.weather = w
	c.state = StateResult
}

// DismissWarning clears the input warning and the error dialog.
func (c *Controller) DismissWarning() {
	c.warning = ""
	c.dialog = ""
}

// Panel is a render-ready snapshot of the controller.
type Panel struct {
	State          State
	TriggerEnabled bool
	TriggerLabel   string

	Heading     string
	Text        string
	City        string
	Temperature string
	Description string
	Icon        string
	IconURL     string

	Warning string
	Dialog  string
}

func (c *Controller) View() Panel {
	p := Panel{
		State:          c.state,
		TriggerEnabled: c.TriggerEnabled(),
		TriggerLabel:   TriggerIdleLabel,
		Warning:        c.warning,
		Dialog:         c.dialog,
	}

	switch c.state {
	case StateWelcome:
		p.Heading = WelcomeHeading
		p.Text = WelcomeText
	case StateLoading:
		p.TriggerLabel = TriggerLoadingLabel
		p.Text = LoadingText
	case StateResult:
		p.City = c.weather.City
		p.Temperature = c.weather.DisplayTemperature()
		p.Description = c.weather.DisplayDescription()
		p.Icon = c.weather.Icon
		p.IconURL = c.weather.IconURL(c.iconTemplate)
	case StateError:
		p.Heading = ErrorHeading
		p.Text = ErrorText
	}

	return p
}
