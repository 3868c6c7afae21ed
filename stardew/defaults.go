package stardew

// Compiled reference tables for the base game content. Each can be
// overridden by a data-directory file; see Load.

var defaultLocations = []string{
	"AbandonedJojaMart",
	"AdventureGuild",
	"BathHousePool",
	"Beach",
	"BeachNightMarket",
	"BoatTunnel",
	"BugLand",
	"BusStop",
	"Caldera",
	"Cellar",
	"Club",
	"CommunityCenter",
	"Desert",
	"Farm",
	"FarmCave",
	"FarmHouse",
	"FishShop",
	"Forest",
	"IslandEast",
	"IslandFarmCave",
	"IslandFarmHouse",
	"IslandFieldOffice",
	"IslandHut",
	"IslandLocation",
	"IslandNorth",
	"IslandShrine",
	"IslandSouth",
	"IslandSouthEast",
	"IslandSouthEastCave",
	"IslandWest",
	"IslandWestCave1",
	"JojaMart",
	"LibraryMuseum",
	"ManorHouse",
	"MermaidHouse",
	"Mine",
	"Mountain",
	"MovieTheater",
	"Railroad",
	"SeedShop",
	"Sewer",
	"Submarine",
	"Summit",
	"Town",
	"WizardHouse",
	"Woods",
	LocationUnknown,
}

// Forage names grouped by season/region, flattened into one lookup set.
var defaultForage = []string{
	// spring
	"Wild Horseradish", "Daffodil", "Leek", "Dandelion", "Spring Onion",
	"Common Mushroom", "Morel", "Salmonberry",
	// summer
	"Grape", "Spice Berry", "Sweet Pea", "Red Mushroom", "Fiddlehead Fern",
	// fall
	"Wild Plum", "Hazelnut", "Blackberry", "Chanterelle", "Purple Mushroom",
	// winter
	"Winter Root", "Crystal Fruit", "Snow Yam", "Crocus", "Holly",
	// beach
	"Nautilus Shell", "Coral", "Sea Urchin", "Rainbow Shell", "Clam",
	"Cockle", "Mussel", "Oyster", "Seaweed",
	// mines
	"Cave Carrot",
	// desert
	"Cactus Fruit", "Coconut",
	// island
	"Ginger", "Magma Cap",
}

// Objects that grant a bonus when dug besides the artifact spot itself.
var defaultDigSpots = []string{
	"Clay",
	"Bone Fragment",
	"Snake Skull",
	"Snake Vertebrae",
	"Fossilized Skull",
	"Fossilized Spine",
	"Fossilized Tail",
	"Fossilized Leg",
	"Fossilized Ribs",
	"Mummified Bat",
	"Mummified Frog",
	"Copper Ore",
	"Iron Ore",
	"Gold Ore",
	"Iridium Ore",
}

// defaultObjects maps the seed/object ids the renderer needs for crop
// labels. Deliberately small: full object tables belong in objects.json.
func defaultObjects() map[string]string {
	return map[string]string{
		"472": "Parsnip",
		"473": "Green Bean",
		"474": "Cauliflower",
		"475": "Potato",
		"476": "Garlic",
		"477": "Kale",
		"478": "Rhubarb",
		"479": "Melon",
		"480": "Tomato",
		"481": "Blueberry",
		"482": "Pepper",
		"483": "Wheat",
		"484": "Radish",
		"485": "Red Cabbage",
		"486": "Starfruit",
		"487": "Corn",
		"488": "Eggplant",
		"489": "Artichoke",
		"490": "Pumpkin",
		"491": "Bok Choy",
		"492": "Yam",
		"493": "Cranberries",
		"494": "Beet",
		"495": "Spring Seeds",
		"496": "Summer Seeds",
		"497": "Fall Seeds",
		"498": "Winter Seeds",
		"499": "Ancient Fruit",
		"301": "Grape",
		"302": "Hops",
		"347": "Sweet Gem Berry",
		"425": "Fairy Rose",
		"427": "Tulip",
		"429": "Blue Jazz",
		"431": "Sunflower",
		"433": "Coffee Bean",
		"745": "Strawberry",
		"833": "Pineapple",
		"835": "Taro Root",
		"885": "Fiber",
	}
}
