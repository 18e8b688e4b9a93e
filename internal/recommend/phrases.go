package recommend

// Phrase pools for reason generation. Each pool covers one independent
// signal; Explain draws one phrase per applicable pool. The %s slots are
// filled with comma-joined interest or purchase lists.

var interestPhrases = []string{
	"Perfect for your passion in %s!",
	"Designed for %s lovers like you!",
	"Enhance your %s experience with this!",
}

var purchasePhrases = []string{
	"Pairs well with your %s!",
	"Complements your recent purchase of %s!",
	"A great addition to your %s setup!",
}

var positiveSentimentPhrases = []string{
	"You seem to be in a great mood—treat yourself with this!",
	"Celebrate your positive vibes with this awesome product!",
	"Your happiness deserves this special addition!",
}

var negativeSentimentPhrases = []string{
	"This might help lift your spirits!",
	"Brighten your day with this fantastic product!",
	"A little something to cheer you up!",
}

var engagementPhrases = []string{
	"As one of our most engaged users, we think you'll love this!",
	"Your active engagement makes this a perfect fit for you!",
	"We picked this just for a loyal user like you!",
}

var riskPhrases = []string{
	"A smart choice to secure your future!",
	"Protect what matters most with this!",
	"Ensure peace of mind with this essential product!",
}

var youngAgePhrases = []string{
	"A trendy pick for young enthusiasts like you!",
	"Young and tech-savvy? This is for you!",
	"Perfect for the next generation of innovators!",
}

var seniorAgePhrases = []string{
	"A reliable choice tailored for your needs!",
	"Designed with your experience in mind!",
	"A timeless addition for seasoned users!",
}

var socialPhrases = []string{
	"Share your experience with this on social media!",
	"Show off this awesome product to your followers!",
	"This is worth posting about on your socials!",
}

var fallbackPhrases = []string{
	"A great addition to your collection!",
	"We think you'll enjoy this product!",
	"A fantastic choice for someone like you!",
}

// productPhrases holds product-specific pitches, keyed by exact product name
var productPhrases = map[string][]string{
	"Gaming Mouse":           {"Level up your gaming with precision control!"},
	"Mechanical Keyboard":    {"Experience the ultimate typing and gaming performance!"},
	"Wireless Keyboard":      {"Boost your productivity with seamless connectivity!"},
	"External SSD":           {"Store your tech projects with lightning-fast speed!"},
	"Phone":                  {"Stay connected with the latest smartphone technology!"},
	"Phone Stand":            {"Keep your device handy while you work or play!"},
	"Screen Protector":       {"Protect your phone in style!"},
	"Earbuds":                {"Immerse yourself in music on the go!"},
	"Smart Watch":            {"Track your fitness and stay connected!"},
	"Wireless Earbuds":       {"Enjoy wireless freedom with crystal-clear sound!"},
	"Camera":                 {"Capture every moment with stunning clarity!"},
	"Camera Bag":             {"Keep your photography gear safe and organized!"},
	"Lens Cleaner":           {"Ensure your shots are always crystal clear!"},
	"Smart Speaker":          {"Bring your home to life with smart audio!"},
	"Fitness Tracker":        {"Stay motivated with your fitness goals!"},
	"Designer Watch":         {"Add a touch of elegance to your style!"},
	"Silk Scarf":             {"Elevate your fashion with this luxurious accessory!"},
	"Winter Boots":           {"Stay warm and stylish this winter!"},
	"Wool Gloves":            {"Keep your hands cozy in the cold!"},
	"Premium Credit Card":    {"Unlock exclusive benefits with this card!"},
	"Investment Portfolio":   {"Secure your financial future with smart investments!"},
	"Travel Insurance":       {"Travel with peace of mind!"},
	"Currency Exchange Card": {"Make international travel hassle-free!"},
}
