package state

import (
	"fmt"
	"math/rand/v2"
)

// DefaultDomain is the host part of the prompt.
const DefaultDomain = "terminal.thanapong.dev"

// Identity is the per-session user shown in the prompt. It is generated once
// and never changes, including across reboots.
type Identity struct {
	Username string
	Domain   string
}

// NewIdentity generates a random username for the given domain.
// A nil rng uses the global source.
func NewIdentity(domain string, rng *rand.Rand) Identity {
	if domain == "" {
		domain = DefaultDomain
	}
	return Identity{
		Username: RandomName(rng),
		Domain:   domain,
	}
}

// RandomName returns an "adjective-surname" pair such as "relaxed-haibt".
func RandomName(rng *rand.Rand) string {
	pick := rand.IntN
	if rng != nil {
		pick = rng.IntN
	}
	return fmt.Sprintf("%s-%s", adjectives[pick(len(adjectives))], surnames[pick(len(surnames))])
}

var adjectives = []string{
	"admiring", "adoring", "affectionate", "agitated", "amazing", "angry",
	"awesome", "blissful", "bold", "boring", "brave", "busy", "charming",
	"clever", "compassionate", "competent", "condescending", "confident",
	"cool", "cranky", "crazy", "dazzling", "determined", "distracted",
	"dreamy", "eager", "ecstatic", "elastic", "elated", "elegant",
	"eloquent", "epic", "exciting", "fervent", "festive", "flamboyant",
	"focused", "friendly", "frosty", "funny", "gallant", "gifted",
	"goofy", "gracious", "happy", "hardcore", "heuristic", "hopeful",
	"hungry", "infallible", "inspiring", "intelligent", "interesting",
	"jolly", "jovial", "keen", "kind", "laughing", "loving", "lucid",
	"magical", "modest", "musing", "mystifying", "naughty", "nervous",
	"nice", "nifty", "nostalgic", "objective", "optimistic", "peaceful",
	"pedantic", "pensive", "practical", "priceless", "quirky", "quizzical",
	"recursing", "relaxed", "reverent", "romantic", "sad", "serene",
	"sharp", "silly", "sleepy", "stoic", "strange", "stupefied",
	"suspicious", "sweet", "tender", "thirsty", "trusting", "unruffled",
	"upbeat", "vibrant", "vigilant", "vigorous", "wizardly", "wonderful",
	"xenodochial", "youthful", "zealous", "zen",
}

var surnames = []string{
	"agnesi", "albattani", "allen", "almeida", "archimedes", "ardinghelli",
	"aryabhata", "austin", "babbage", "banach", "bardeen", "bartik",
	"bassi", "bell", "benz", "bhabha", "bhaskara", "blackwell", "bohr",
	"booth", "borg", "bose", "boyd", "brahmagupta", "brattain", "brown",
	"carson", "chandrasekhar", "clarke", "colden", "cori", "cray",
	"curie", "darwin", "davinci", "dijkstra", "dubinsky", "easley",
	"edison", "einstein", "elion", "engelbart", "euclid", "euler",
	"fermat", "fermi", "feynman", "franklin", "galileo", "gates",
	"goldberg", "goldstine", "goldwasser", "golick", "goodall", "haibt",
	"hamilton", "hawking", "heisenberg", "hermann", "heyrovsky", "hodgkin",
	"hoover", "hopper", "hugle", "hypatia", "jackson", "jang", "jennings",
	"jepsen", "johnson", "joliot", "jones", "kalam", "kare", "keller",
	"kepler", "khorana", "kilby", "kirch", "knuth", "kowalevski",
	"lalande", "lamarr", "lamport", "leakey", "leavitt", "lewin",
	"lichterman", "liskov", "lovelace", "lumiere", "mahavira", "mayer",
	"mccarthy", "mcclintock", "mclean", "mcnulty", "meitner", "meninsky",
	"mestorf", "minsky", "mirzakhani", "morse", "murdock", "napier",
	"nash", "neumann", "newton", "nightingale", "nobel", "noether",
	"northcutt", "noyce", "panini", "pare", "pasteur", "payne", "perlman",
	"pike", "poincare", "poitras", "ptolemy", "raman", "ramanujan",
	"ride", "ritchie", "roentgen", "rosalind", "saha", "sammet",
	"shannon", "shaw", "shirley", "shockley", "sinoussi", "snyder",
	"spence", "stallman", "stonebraker", "swanson", "swartz", "swirles",
	"tesla", "thompson", "torvalds", "turing", "varahamihira", "visvesvaraya",
	"volhard", "wescoff", "wiles", "williams", "wilson", "wing", "wozniak",
	"wright", "yalow", "yonath",
}
