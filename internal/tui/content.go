package tui

// Placeholder page content. None of it comes from a live data source.

type challenge struct {
	icon  string
	title string
}

var farmingChallenges = []challenge{
	{icon: "❄️", title: "Frost Risk"},
	{icon: "⏱️", title: "Short Growing Season"},
	{icon: "🌧️", title: "Unpredictable Weather"},
	{icon: "🐛", title: "Pests & Disease"},
}

var todaysConditions = []string{
	"Temperature: 18°C - 24°C",
	"Conditions: Partly Cloudy",
	"Wind: 15 km/h NW",
	"Precipitation: 20% chance",
}

var weekAhead = []string{
	"Days 1-3: Warm and dry conditions ideal for fieldwork",
	"Days 4-5: Scattered showers expected, delay spraying operations",
	"Days 6-7: Clearing conditions, good for harvesting",
}

type commodityPrice struct {
	icon   string
	crop   string
	price  string
	change string
}

var commodityPrices = []commodityPrice{
	{icon: "🌾", crop: "Wheat", price: "$320/tonne", change: "+2.5%"},
	{icon: "💛", crop: "Canola", price: "$650/tonne", change: "+1.8%"},
	{icon: "🌾", crop: "Barley", price: "$280/tonne", change: "-0.5%"},
	{icon: "🌾", crop: "Oats", price: "$310/tonne", change: "+3.2%"},
}

var communityTips = []string{
	`"Early morning scouting is best for detecting pest issues before they spread" - Saskatchewan farmer`,
	`"Keep detailed records of applications and yields for better planning next year" - Ontario farmer`,
	`"Soil testing in fall gives you more time to plan amendments for spring" - Alberta farmer`,
	`"Consider companion planting to naturally reduce pest pressure" - BC farmer`,
}

type menuItem struct {
	label string
	key   string
}

var menuItems = []menuItem{
	{label: "🏠 Dashboard", key: "1"},
	{label: "📝 New Assessment", key: "2"},
	{label: "🎯 Goals", key: "3"},
	{label: "🌤️ Weather", key: "4"},
	{label: "💰 Market Prices", key: "5"},
	{label: "👥 Community", key: "6"},
}
