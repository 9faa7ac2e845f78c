package jokeapi

// RawJoke mirrors the payload returned by GET /joke/{category}.
//
// Only Setup, Delivery and Category are consumed downstream. The remaining
// fields are decoded so the payload can be logged and inspected, but they are
// not part of the domain.
type RawJoke struct {
	Error    bool   `json:"error"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Setup    string `json:"setup"`
	Delivery string `json:"delivery"`
	Joke     string `json:"joke"`
	Flags    Flags  `json:"flags"`
	ID       int    `json:"id"`
	Safe     bool   `json:"safe"`
	Lang     string `json:"lang"`
}

// Flags are the content markers JokeAPI attaches to every joke.
type Flags struct {
	NSFW      bool `json:"nsfw"`
	Religious bool `json:"religious"`
	Political bool `json:"political"`
	Racist    bool `json:"racist"`
	Sexist    bool `json:"sexist"`
	Explicit  bool `json:"explicit"`
}

// Blacklist flag names accepted by the blacklistFlags query parameter.
const (
	FlagNSFW      = "nsfw"
	FlagReligious = "religious"
	FlagPolitical = "political"
	FlagRacist    = "racist"
	FlagSexist    = "sexist"
	FlagExplicit  = "explicit"
)

var knownFlags = map[string]bool{
	FlagNSFW:      true,
	FlagReligious: true,
	FlagPolitical: true,
	FlagRacist:    true,
	FlagSexist:    true,
	FlagExplicit:  true,
}
