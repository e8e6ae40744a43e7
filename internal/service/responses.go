package service

// Keyword lists. Matching is done against the lower-cased message.
var (
	residentialTokens = []string{"1bhk", "2bhk", "3bhk", "4bhk", "5bhk", "villa", "bungalow", "duplex", "tenament"}
	commercialTokens  = []string{"showroom", "office", "shop", "corporate_floors", "corporate floor"}
	statusTokens      = []string{"new", "resale", "rent", "lease"}

	// Whole words that bind each status token
	statusForms = map[string][]string{
		"new":    {"new"},
		"resale": {"resale", "resales"},
		"rent":   {"rent", "rents", "rental", "rentals", "renting"},
		"lease":  {"lease", "leases", "leased", "leasing"},
	}

	greetingKeywords = []string{"hello", "hi", "hey", "start"}
	helpKeywords     = []string{"help"}

	propertyKeywords = []string{
		"property", "house", "home", "flat", "apartment", "buy", "sell", "rent", "lease",
		"real estate", "builder", "construction", "project", "location", "area", "sqft",
		"bedroom", "bathroom", "kitchen", "balcony", "parking", "amenities", "gym", "pool",
		"security", "garden", "club", "investment", "roi", "appreciation", "price", "cost",
		"interior", "design", "decoration", "turnkey", "consultancy", "market", "trend",
	}

	friendlyKeywords = []string{
		"how are you", "how you doing", "what's up", "wanna chat", "hey cutie", "love you", "miss you", "cutie",
		"flirt", "friend", "just chatting", "hanging out", "timepass",
	}

	goodbyeKeywords = []string{
		"bye", "goodbye", "good bye", "see you", "see ya", "catch you later", "talk to you later",
		"ttyl", "farewell", "take care", "gotta go", "have to go", "leaving now", "exit", "quit",
	}

	interiorKeywords = []string{"interior", "design", "decoration", "turnkey", "consultancy"}
	amenityKeywords  = []string{"gym", "pool", "swimming", "parking", "security", "garden", "club", "amenities"}
	insightKeywords  = []string{"market", "price", "trend", "investment", "roi", "appreciation"}
	saleKeywords     = []string{"for sale", "sell", "selling", "owner"}
	aboveKeywords    = []string{"above", "over"}
)

// FriendlyResponses are the canned replies to social chatter
var FriendlyResponses = []string{
	"Hey there! I'm doing great, thanks for asking—how about you? 😄 Ready to find your dream home?",
	"Aww, you're sweet! I'm just a bot, but I'm super excited to help you find a property! 🏠 What's on your mind?",
	"Haha, I'm blushing in binary! 😊 Let's chat about your dream property—any ideas?",
	"Yo, what's good? I'm just chilling in the cloud, ready to find you a perfect place! 🏡 Tell me what you're looking for!",
	"Well, aren't you a charmer? 😎 I'm here to help you find a cozy home or a cool office—whatcha thinking?",
}

// GoodbyeResponses are the canned farewells
var GoodbyeResponses = []string{
	"Goodbye! 👋 It was great helping you with your property search. Come back anytime you need assistance! 🏠",
	"See you later! 😊 Hope you find your perfect property soon. Feel free to reach out whenever you need help! 🏡",
	"Take care! 💙 Thanks for chatting with me. I'm always here when you need property advice. Bye! 👋",
	"Bye bye! 🌟 Best of luck with your property journey. Don't hesitate to contact me again! 🏠✨",
	"Farewell! 🤗 It's been a pleasure assisting you. Come back soon for more property insights! 🏡💫",
	"Catch you later! 😄 Hope I helped you get closer to your dream home. See you next time! 👋🏠",
}

const capabilities = "I can help you with:\n" +
	"🏠 Finding properties (2BHK, 3BHK, villas, commercial)\n" +
	"📍 Properties by location\n" +
	"💰 Budget-based searches\n" +
	"🏢 Commercial properties\n" +
	"🎨 Interior design services\n" +
	"📊 Market insights\n\n" +
	"Try asking: '2BHK in [location] under 50 lakhs' or 'Show me villas in [area]'"

// OutOfScopeResponse is returned for messages unrelated to real estate
const OutOfScopeResponse = "I'm HorizonBot, your property assistant! 🏠 I specialize in helping with real estate queries.\n\n" +
	capabilities

// GreetingResponse is the onboarding message
const GreetingResponse = "Hi! 👋 I'm HorizonBot, your property assistant.\n\n" + capabilities

// HelpResponse explains how to phrase queries
const HelpResponse = "🤖 **How to use HorizonBot:**\n\n" +
	"**Property Search Examples:**\n" +
	"• '2BHK in [location name]'\n" +
	"• 'Villas under 2 crores'\n" +
	"• 'Commercial office space in [area]'\n" +
	"• 'Properties in [location] under 80 lakhs'\n\n" +
	"**Other Services:**\n" +
	"• Ask about 'interior design'\n" +
	"• Get 'market insights'\n" +
	"• Browse 'amenities'\n" +
	"• Check properties 'for sale by owner'\n"

const interiorDesignResponse = "🎨 **Interior Design Services:**<br><br>" +
	"We offer professional interior design services:<br><br>" +
	"**Service Types:**<br><br>" +
	"• Turn Key Solutions - Complete interior setup<br><br>" +
	"• Consultancy Services - Design guidance and planning<br><br>" +
	"**Property Types We Handle:**<br><br>" +
	"• Flats & Apartments<br><br>" +
	"• Bungalows<br><br>" +
	"• Penthouses<br><br>" +
	"Contact us to discuss your interior design requirements!"

const investmentTips = "<br>**Investment Tips:**<br><br>" +
	"• Consider location connectivity and infrastructure<br><br>" +
	"• Check for upcoming developments in the area<br><br>" +
	"• Evaluate builder reputation and project completion history<br><br>"

const noSellListingsResponse = "No properties available for sale right now. Would you like to list your property with us?"

const fallbackExamples = "\n\nExample queries:\n" +
	"• '2BHK in [location] under 50 lakhs'\n" +
	"• 'Villas in [your area]'\n" +
	"• 'Commercial office space for rent'"
