package service

import "Tourism-App/internal/domain/model"

// ResponseRule はキーワード（部分一致）と応答の組
type ResponseRule struct {
	Name        string
	Keywords    []string // 小文字で定義する
	Response    string
	Suggestions []string
}

// WelcomeMessage はセッション開始時のボットの最初の発言
const WelcomeMessage = "Hello! I'm your virtual tourism assistant. I can help you with information about places, hotels, transportation, and local culture in Jharkhand. What would you like to know?"

// ルール名
const (
	RuleGreeting      = "greeting"
	RuleNetarhat      = "netarhat"
	RuleHundru        = "hundru"
	RuleBetla         = "betla"
	RuleSpiritual     = "spiritual"
	RuleAccommodation = "accommodation"
	RuleFood          = "food"
	RuleTransport     = "transport"
	RuleWeather       = "weather"
	RuleCulture       = "culture"
	RuleCost          = "cost"
	RuleShopping      = "shopping"
	RuleItinerary     = "itinerary"
	RuleThanks        = "thanks"
	RuleFallback      = "fallback"
)

// DefaultResponseRules は評価順に並んだ応答ルール
// 先に一致したルールが採用されるため、並び順を変えると応答が変わる
func DefaultResponseRules() []ResponseRule {
	return []ResponseRule{
		{
			Name:        RuleGreeting,
			Keywords:    []string{"hello", "namaste", "greetings", "good morning", "good evening"},
			Response:    "Namaste! Welcome to Jharkhand, the land of forests. Ask me about waterfalls, hill stations, wildlife safaris, tribal culture, food or how to plan your trip.",
			Suggestions: []string{"Tell me about Netarhat", "Best waterfalls", "Plan my trip"},
		},
		{
			Name:        RuleNetarhat,
			Keywords:    []string{"netarhat", "hill station"},
			Response:    "Netarhat is known as the 'Queen of Chotanagpur' and is famous for its beautiful sunrises and sunsets. The best time to visit is from October to March. You can stay at the Forest Rest House or local guesthouses.",
			Suggestions: []string{"How to reach Netarhat", "Hotels near Netarhat", "Betla National Park"},
		},
		{
			Name:        RuleHundru,
			Keywords:    []string{"hundru", "waterfall"},
			Response:    "Hundru Falls is a spectacular 98-meter high waterfall located about 45 km from Ranchi. It's best visited during monsoon season (July-September) when the water flow is at its peak. The area is perfect for picnics and photography.",
			Suggestions: []string{"Best time to visit", "Transport from Ranchi", "Local food"},
		},
		{
			Name:        RuleBetla,
			Keywords:    []string{"betla", "tiger", "safari"},
			Response:    "Betla National Park is home to tigers, elephants, and many other wildlife species. Safari timings are typically 6:00-9:00 AM and 2:30-5:30 PM. I recommend booking your safari in advance, especially during peak season (November-March).",
			Suggestions: []string{"Safari booking", "Stay near Betla", "Netarhat"},
		},
		{
			Name:        RuleSpiritual,
			Keywords:    []string{"deoghar", "temple", "pilgrim", "spiritual", "jyotirlinga"},
			Response:    "Deoghar is home to the Baba Baidyanath Temple, one of the twelve Jyotirlingas, and draws lakhs of pilgrims during the Shravani Mela (July-August). In Ranchi, the Jagannath Temple is a beautiful replica of the Puri temple and hosts a grand Rath Yatra.",
			Suggestions: []string{"How to reach Deoghar", "Stay in Deoghar", "Plan my trip"},
		},
		{
			Name:        RuleAccommodation,
			Keywords:    []string{"hotel", "stay", "accommodation", "homestay", "resort"},
			Response:    "Jharkhand offers various accommodation options from budget hotels (₹800-2000/night) to luxury resorts (₹3000-8000/night). For authentic experiences, I highly recommend tribal homestays where you can learn about local culture and traditions.",
			Suggestions: []string{"Tribal homestays", "Budget options", "Luxury resorts"},
		},
		{
			Name:        RuleFood,
			Keywords:    []string{"food", "cuisine", "dish", "delicac", "to eat", "eat out", "restaurant"},
			Response:    "Don't miss trying local delicacies like Dhuska (rice pancake), Rugra (mushroom curry), Bamboo shoot curry, and Handia (traditional rice beer). Most tribal homestays serve authentic organic meals.",
			Suggestions: []string{"Tribal homestays", "Local markets", "Culture"},
		},
		{
			Name:        RuleTransport,
			Keywords:    []string{"transport", "travel", "reach", "airport", "train", "bus"},
			Response:    "Ranchi has the nearest airport with connections to major cities. The state is well-connected by railways and roads. For local travel, you can hire taxis, use state buses, or rent bikes for nearby attractions.",
			Suggestions: []string{"Hundru Falls from Ranchi", "Weather", "Trip cost"},
		},
		{
			Name:        RuleWeather,
			Keywords:    []string{"weather", "climate", "season", "monsoon", "best time"},
			Response:    "The best time to visit Jharkhand is from October to March when the weather is pleasant. Summers can be quite hot (up to 42°C) and monsoons bring heavy rainfall (June-September).",
			Suggestions: []string{"Waterfalls in monsoon", "Winter season", "Plan my trip"},
		},
		{
			Name:        RuleCulture,
			Keywords:    []string{"culture", "tribe", "tribal", "traditional", "festival"},
			Response:    "Jharkhand is rich in tribal culture with communities like Santhal, Oraon, and Munda. You can experience traditional dance, music, handicrafts like Dokra art, and festivals like Sohrai and Karam. Many villages offer cultural programs for visitors.",
			Suggestions: []string{"Dokra art", "Tribal homestays", "Shopping"},
		},
		{
			Name:        RuleCost,
			Keywords:    []string{"cost", "budget", "price", "expensive", "cheap"},
			Response:    "A budget trip to Jharkhand can cost ₹1500-2500 per day including accommodation, food, and local transport. Mid-range travelers should budget ₹3000-5000 per day, while luxury travelers can expect to spend ₹6000+ per day.",
			Suggestions: []string{"Budget hotels", "Plan my trip", "Transport"},
		},
		{
			Name:        RuleShopping,
			Keywords:    []string{"shopping", "buy", "market", "handicraft", "souvenir", "dokra", "silk"},
			Response:    "Visit our Marketplace section for authentic tribal handicrafts! You can buy Dokra art, handwoven textiles, bamboo crafts, and tribal jewelry. Main Road in Ranchi and local markets in Deoghar are great for shopping.",
			Suggestions: []string{"Dokra art", "Tussar silk", "Deoghar"},
		},
		{
			Name:        RuleItinerary,
			Keywords:    []string{"itinerary", "plan", "trip", "days", "week"},
			Response:    "I can help you plan! Tell me how many days you have, what you enjoy (nature, culture, adventure or spiritual places) and your budget, or open the AI Trip Planner to get a personalized itinerary with an estimated cost.",
			Suggestions: []string{"3 days nature trip", "Weekend budget trip", "Spiritual tour"},
		},
		{
			Name:        RuleThanks,
			Keywords:    []string{"thank", "thanks", "dhanyavad"},
			Response:    "You're welcome! Have a wonderful journey through Jharkhand. Feel free to ask if you need anything else.",
			Suggestions: []string{"Plan my trip", "Tribal culture"},
		},
	}
}

// FallbackRule はどのルールにも一致しなかった場合の応答
func FallbackRule() ResponseRule {
	return ResponseRule{
		Name:        RuleFallback,
		Response:    "That's a great question! I'd be happy to help you with specific information about places to visit, accommodations, food, transportation, or cultural experiences in Jharkhand. Could you please be more specific about what you'd like to know?",
		Suggestions: []string{"Hill stations", "Hotels", "Local food", "Transport", "Tribal culture"},
	}
}

// toChips はラベルをSuggestionChipに変換する
func toChips(labels []string) []model.SuggestionChip {
	chips := make([]model.SuggestionChip, 0, len(labels))
	for _, l := range labels {
		chips = append(chips, model.SuggestionChip{Label: l})
	}
	return chips
}
