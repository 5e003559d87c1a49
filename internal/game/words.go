package game

// DefaultWords is the built-in secret word pool, combined with each room's
// custom words at round start.
var DefaultWords = []string{
	// everyday objects
	"apple", "computer", "airplane", "piano", "umbrella", "chocolate",
	"telephone", "bicycle", "flower", "fridge", "watch", "lamp", "chair",
	"coffee", "pizza", "butterfly", "tree", "guitar", "mirror", "backpack",
	"pillow", "toaster", "kettle", "vacuum", "wardrobe", "carpet",

	// animals
	"cat", "dog", "horse", "rabbit", "squirrel", "fox", "wolf", "bear",
	"penguin", "dolphin", "octopus", "hedgehog", "turtle", "parrot",

	// food
	"pancake", "sandwich", "noodles", "watermelon", "strawberry", "cheese",
	"popcorn", "pretzel", "avocado", "cinnamon", "dumpling",

	// places
	"library", "airport", "stadium", "lighthouse", "castle", "hospital",
	"cinema", "bakery", "museum", "waterfall", "volcano", "island",

	// professions
	"teacher", "firefighter", "pilot", "chef", "architect", "plumber",
	"astronaut", "magician", "detective", "lifeguard",

	// activities
	"karaoke", "camping", "juggling", "surfing", "chess", "skiing",
	"gardening", "origami", "bowling", "archery",
}
