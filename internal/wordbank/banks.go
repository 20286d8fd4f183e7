// Package wordbank holds the static Cambridge YLE practice word banks used
// to fill the daily spelling session once priority words run out.
package wordbank

import "notebook/internal/models"

// Starters is the Pre A1 Starters bank
var Starters = []string{
	"apple", "banana", "bag", "ball", "bed", "bike", "bird", "boat", "book",
	"box", "boy", "bread", "bus", "cake", "car", "cat", "chair", "chicken",
	"clock", "cow", "dog", "doll", "door", "duck", "egg", "elephant", "eye",
	"face", "fish", "flower", "foot", "frog", "girl", "hand", "hat", "head",
	"horse", "house", "ice cream", "juice", "kite", "lemon", "lizard",
	"mango", "milk", "monkey", "mouse", "name", "nose", "orange", "pen",
	"pencil", "phone", "piano", "pig", "plane", "rice", "robot", "school",
	"sea", "shoe", "snake", "sock", "spider", "sun", "table", "tiger",
	"train", "tree", "water", "window", "zoo",
}

// Movers is the A1 Movers bank
var Movers = []string{
	"afternoon", "balcony", "basement", "beach", "bear", "blanket", "body",
	"building", "centre", "cheese", "cinema", "circle", "city", "cloud",
	"coat", "coffee", "comic", "countryside", "daughter", "dolphin",
	"dream", "driver", "farmer", "field", "film", "forest", "glass",
	"grandparent", "ground", "helmet", "holiday", "homework", "hospital",
	"island", "jungle", "kangaroo", "kitten", "lake", "library", "map",
	"market", "matter", "milkshake", "moon", "mountain", "museum", "noodles",
	"panda", "parrot", "pancake", "picnic", "pirate", "planet", "player",
	"pool", "puppy", "rabbit", "rain", "river", "roof", "sandwich",
	"scarf", "shark", "shower", "snail", "square", "station", "supermarket",
	"sweater", "temperature", "towel", "treasure", "village", "waterfall",
	"weather", "weekend", "whale", "wind",
}

// Flyers is the A2 Flyers bank
var Flyers = []string{
	"airport", "ambulance", "astronaut", "backpack", "battery", "bridge",
	"brilliant", "business", "butterfly", "calendar", "castle", "century",
	"channel", "chemist", "chopsticks", "college", "competition",
	"conversation", "corner", "creature", "dentist", "designer",
	"dictionary", "dinosaur", "eagle", "engineer", "entrance", "envelope",
	"environment", "factory", "firefighter", "flashlight", "fridge",
	"future", "geography", "history", "hotel", "hurry", "information",
	"insect", "journalist", "kilometre", "knife", "language", "magazine",
	"mechanic", "medicine", "member", "message", "midnight", "million",
	"mystery", "necklace", "newspaper", "nephew", "octopus", "passenger",
	"pepper", "photographer", "pilot", "police", "pollution", "position",
	"postcard", "programme", "pyramid", "quarter", "restaurant", "sauce",
	"science", "screen", "secretary", "spaceship", "stadium", "stomach",
	"straight", "stranger", "theatre", "tortoise", "umbrella", "university",
	"vegetable", "whisper", "wool",
}

// All returns the three banks concatenated in level order, the pool the
// session generator draws its random fill from
func All() []string {
	out := make([]string, 0, len(Starters)+len(Movers)+len(Flyers))
	out = append(out, Starters...)
	out = append(out, Movers...)
	out = append(out, Flyers...)
	return out
}

// LevelOf returns which bank a word belongs to, checking banks in level
// order; ok is false for words outside the banks
func LevelOf(word string) (models.Level, bool) {
	key := models.Key(word)
	for _, w := range Starters {
		if models.Key(w) == key {
			return models.LevelStarters, true
		}
	}
	for _, w := range Movers {
		if models.Key(w) == key {
			return models.LevelMovers, true
		}
	}
	for _, w := range Flyers {
		if models.Key(w) == key {
			return models.LevelFlyers, true
		}
	}
	return "", false
}
