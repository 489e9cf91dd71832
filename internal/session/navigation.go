package session

import (
	"fmt"

	"github.com/Veraticus/smart-farming/internal/common"
)

// View is a page of the assistant.
type View int

const (
	ViewDashboard View = iota
	ViewProfile
	ViewCropSelect
	ViewResults
	ViewGoals
	ViewWeather
	ViewMarket
	ViewCommunity
)

var viewNames = map[View]string{
	ViewDashboard:  "dashboard",
	ViewProfile:    "profile",
	ViewCropSelect: "crop-select",
	ViewResults:    "results",
	ViewGoals:      "goals",
	ViewWeather:    "weather",
	ViewMarket:     "market",
	ViewCommunity:  "community",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Action is a navigation event.
type Action int

const (
	ActionOpenDashboard Action = iota
	ActionNewAssessment
	ActionOpenGoals
	ActionOpenWeather
	ActionOpenMarket
	ActionOpenCommunity
	ActionProfileAccepted
	ActionAssessmentCompleted
	ActionBack
)

var actionNames = map[Action]string{
	ActionOpenDashboard:       "open-dashboard",
	ActionNewAssessment:       "new-assessment",
	ActionOpenGoals:           "open-goals",
	ActionOpenWeather:         "open-weather",
	ActionOpenMarket:          "open-market",
	ActionOpenCommunity:       "open-community",
	ActionProfileAccepted:     "profile-accepted",
	ActionAssessmentCompleted: "assessment-completed",
	ActionBack:                "back",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// menuViews are the pages reachable from the main menu.
var menuViews = []View{
	ViewDashboard,
	ViewResults,
	ViewGoals,
	ViewWeather,
	ViewMarket,
	ViewCommunity,
}

var allViews = []View{
	ViewDashboard,
	ViewProfile,
	ViewCropSelect,
	ViewResults,
	ViewGoals,
	ViewWeather,
	ViewMarket,
	ViewCommunity,
}

type transitionKey struct {
	from   View
	action Action
}

// transitions maps (view, action) to the destination view.
var transitions = buildTransitions()

func buildTransitions() map[transitionKey]View {
	t := make(map[transitionKey]View)

	for _, from := range allViews {
		t[transitionKey{from, ActionOpenDashboard}] = ViewDashboard
		t[transitionKey{from, ActionOpenGoals}] = ViewGoals
		t[transitionKey{from, ActionOpenWeather}] = ViewWeather
		t[transitionKey{from, ActionOpenMarket}] = ViewMarket
		t[transitionKey{from, ActionOpenCommunity}] = ViewCommunity
	}

	for _, from := range menuViews {
		t[transitionKey{from, ActionNewAssessment}] = ViewProfile
	}

	t[transitionKey{ViewProfile, ActionProfileAccepted}] = ViewCropSelect
	t[transitionKey{ViewCropSelect, ActionBack}] = ViewProfile
	t[transitionKey{ViewCropSelect, ActionAssessmentCompleted}] = ViewResults

	for _, from := range []View{ViewProfile, ViewResults, ViewGoals, ViewWeather, ViewMarket, ViewCommunity} {
		t[transitionKey{from, ActionBack}] = ViewDashboard
	}

	return t
}

// Next returns the view reached from "from" by action.
func Next(from View, action Action) (View, error) {
	to, ok := transitions[transitionKey{from, action}]
	if !ok {
		return from, fmt.Errorf("%w: %s from %s", common.ErrInvalidTransition, action, from)
	}
	return to, nil
}
