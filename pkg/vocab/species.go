package vocab

// speciesNames is the builtin vocabulary: common North American birds
// in checklist (alphabetical) order. Callers needing a regional or
// custom list should load their own file via FromFile.
var speciesNames = []string{
	"Acadian Flycatcher",
	"Acorn Woodpecker",
	"American Avocet",
	"American Bittern",
	"American Black Duck",
	"American Coot",
	"American Crow",
	"American Dipper",
	"American Goldfinch",
	"American Kestrel",
	"American Oystercatcher",
	"American Pipit",
	"American Redstart",
	"American Robin",
	"American Tree Sparrow",
	"American White Pelican",
	"American Wigeon",
	"American Woodcock",
	"Anhinga",
	"Anna's Hummingbird",
	"Ash-throated Flycatcher",
	"Bald Eagle",
	"Baltimore Oriole",
	"Band-tailed Pigeon",
	"Bank Swallow",
	"Barn Owl",
	"Barn Swallow",
	"Barred Owl",
	"Bay-breasted Warbler",
	"Bell's Vireo",
	"Belted Kingfisher",
	"Bewick's Wren",
	"Black Phoebe",
	"Black Scoter",
	"Black Skimmer",
	"Black Tern",
	"Black Vulture",
	"Black-and-white Warbler",
	"Black-bellied Plover",
	"Black-billed Cuckoo",
	"Black-billed Magpie",
	"Black-capped Chickadee",
	"Black-chinned Hummingbird",
	"Black-crowned Night-Heron",
	"Black-headed Grosbeak",
	"Black-necked Stilt",
	"Black-throated Blue Warbler",
	"Black-throated Gray Warbler",
	"Black-throated Green Warbler",
	"Blackburnian Warbler",
	"Blackpoll Warbler",
	"Blue Grosbeak",
	"Blue Jay",
	"Blue-gray Gnatcatcher",
	"Blue-headed Vireo",
	"Blue-winged Teal",
	"Blue-winged Warbler",
	"Boat-tailed Grackle",
	"Bobolink",
	"Bohemian Waxwing",
	"Bonaparte's Gull",
	"Boreal Chickadee",
	"Brewer's Blackbird",
	"Brewer's Sparrow",
	"Broad-tailed Hummingbird",
	"Broad-winged Hawk",
	"Brown Creeper",
	"Brown Pelican",
	"Brown Thrasher",
	"Brown-headed Cowbird",
	"Brown-headed Nuthatch",
	"Bufflehead",
	"Bullock's Oriole",
	"Burrowing Owl",
	"Bushtit",
	"Cactus Wren",
	"California Gull",
	"California Quail",
	"California Scrub-Jay",
	"California Thrasher",
	"California Towhee",
	"Calliope Hummingbird",
	"Canada Goose",
	"Canada Warbler",
	"Canvasback",
	"Canyon Wren",
	"Cape May Warbler",
	"Carolina Chickadee",
	"Carolina Wren",
	"Caspian Tern",
	"Cassin's Finch",
	"Cassin's Kingbird",
	"Cattle Egret",
	"Cedar Waxwing",
	"Cerulean Warbler",
	"Chestnut-backed Chickadee",
	"Chestnut-sided Warbler",
	"Chimney Swift",
	"Chipping Sparrow",
	"Cinnamon Teal",
	"Clark's Nutcracker",
	"Clay-colored Sparrow",
	"Cliff Swallow",
	"Common Eider",
	"Common Gallinule",
	"Common Goldeneye",
	"Common Grackle",
	"Common Loon",
	"Common Merganser",
	"Common Nighthawk",
	"Common Raven",
	"Common Redpoll",
	"Common Tern",
	"Common Yellowthroat",
	"Cooper's Hawk",
	"Cordilleran Flycatcher",
	"Dark-eyed Junco",
	"Dickcissel",
	"Double-crested Cormorant",
	"Downy Woodpecker",
	"Dunlin",
	"Eared Grebe",
	"Eastern Bluebird",
	"Eastern Kingbird",
	"Eastern Meadowlark",
	"Eastern Phoebe",
	"Eastern Screech-Owl",
	"Eastern Towhee",
	"Eastern Wood-Pewee",
	"Eurasian Collared-Dove",
	"European Starling",
	"Evening Grosbeak",
	"Ferruginous Hawk",
	"Field Sparrow",
	"Fish Crow",
	"Forster's Tern",
	"Fox Sparrow",
	"Gadwall",
	"Gambel's Quail",
	"Gila Woodpecker",
	"Glossy Ibis",
	"Golden Eagle",
	"Golden-crowned Kinglet",
	"Golden-crowned Sparrow",
	"Golden-winged Warbler",
	"Grasshopper Sparrow",
	"Gray Catbird",
	"Gray Jay",
	"Great Black-backed Gull",
	"Great Blue Heron",
	"Great Crested Flycatcher",
	"Great Egret",
	"Great Horned Owl",
	"Great-tailed Grackle",
	"Greater Roadrunner",
	"Greater Scaup",
	"Greater Yellowlegs",
	"Green Heron",
	"Green-tailed Towhee",
	"Green-winged Teal",
	"Hairy Woodpecker",
	"Harlequin Duck",
	"Harris's Hawk",
	"Harris's Sparrow",
	"Hermit Thrush",
	"Herring Gull",
	"Hooded Merganser",
	"Hooded Oriole",
	"Hooded Warbler",
	"Horned Grebe",
	"Horned Lark",
	"House Finch",
	"House Sparrow",
	"House Wren",
	"Indigo Bunting",
	"Killdeer",
	"King Rail",
	"Ladder-backed Woodpecker",
	"Lark Bunting",
	"Lark Sparrow",
	"Laughing Gull",
	"Lazuli Bunting",
	"Least Bittern",
	"Least Flycatcher",
	"Least Sandpiper",
	"Least Tern",
	"Lesser Goldfinch",
	"Lesser Scaup",
	"Lesser Yellowlegs",
	"Lincoln's Sparrow",
	"Little Blue Heron",
	"Loggerhead Shrike",
	"Long-billed Curlew",
	"Long-eared Owl",
	"Louisiana Waterthrush",
	"Magnolia Warbler",
	"Mallard",
	"Marbled Godwit",
	"Marsh Wren",
	"Merlin",
	"Mississippi Kite",
	"Mountain Bluebird",
	"Mountain Chickadee",
	"Mourning Dove",
	"Mourning Warbler",
	"Mute Swan",
	"Nashville Warbler",
	"Northern Bobwhite",
	"Northern Cardinal",
	"Northern Flicker",
	"Northern Gannet",
	"Northern Goshawk",
	"Northern Harrier",
	"Northern Mockingbird",
	"Northern Parula",
	"Northern Pintail",
	"Northern Rough-winged Swallow",
	"Northern Saw-whet Owl",
	"Northern Shoveler",
	"Northern Shrike",
	"Northern Waterthrush",
	"Nuttall's Woodpecker",
	"Oak Titmouse",
	"Olive-sided Flycatcher",
	"Orange-crowned Warbler",
	"Orchard Oriole",
	"Osprey",
	"Ovenbird",
	"Pacific Loon",
	"Pacific Wren",
	"Painted Bunting",
	"Palm Warbler",
	"Pectoral Sandpiper",
	"Peregrine Falcon",
	"Phainopepla",
	"Pied-billed Grebe",
	"Pigeon Guillemot",
	"Pileated Woodpecker",
	"Pine Grosbeak",
	"Pine Siskin",
	"Pine Warbler",
	"Piping Plover",
	"Prairie Falcon",
	"Prairie Warbler",
	"Prothonotary Warbler",
	"Purple Finch",
	"Purple Gallinule",
	"Purple Martin",
	"Pygmy Nuthatch",
	"Red Crossbill",
	"Red-bellied Woodpecker",
	"Red-breasted Merganser",
	"Red-breasted Nuthatch",
	"Red-cockaded Woodpecker",
	"Red-eyed Vireo",
	"Red-headed Woodpecker",
	"Red-shouldered Hawk",
	"Red-tailed Hawk",
	"Red-winged Blackbird",
	"Reddish Egret",
	"Ring-billed Gull",
	"Ring-necked Duck",
	"Ring-necked Pheasant",
	"Rock Pigeon",
	"Rock Wren",
	"Rose-breasted Grosbeak",
	"Roseate Spoonbill",
	"Ross's Goose",
	"Rough-legged Hawk",
	"Royal Tern",
	"Ruby-crowned Kinglet",
	"Ruby-throated Hummingbird",
	"Ruddy Duck",
	"Ruddy Turnstone",
	"Ruffed Grouse",
	"Rufous Hummingbird",
	"Rusty Blackbird",
	"Sage Thrasher",
	"Sanderling",
	"Sandhill Crane",
	"Savannah Sparrow",
	"Say's Phoebe",
	"Scarlet Tanager",
	"Scissor-tailed Flycatcher",
	"Sedge Wren",
	"Semipalmated Plover",
	"Semipalmated Sandpiper",
	"Sharp-shinned Hawk",
	"Short-billed Dowitcher",
	"Short-eared Owl",
	"Snail Kite",
	"Snow Bunting",
	"Snow Goose",
	"Snowy Egret",
	"Snowy Owl",
	"Snowy Plover",
	"Solitary Sandpiper",
	"Song Sparrow",
	"Sora",
	"Spotted Sandpiper",
	"Spotted Towhee",
	"Steller's Jay",
	"Summer Tanager",
	"Surf Scoter",
	"Swainson's Hawk",
	"Swainson's Thrush",
	"Swallow-tailed Kite",
	"Swamp Sparrow",
	"Tennessee Warbler",
	"Townsend's Solitaire",
	"Townsend's Warbler",
	"Tree Swallow",
	"Tricolored Heron",
	"Trumpeter Swan",
	"Tufted Titmouse",
	"Tundra Swan",
	"Turkey Vulture",
	"Upland Sandpiper",
	"Varied Thrush",
	"Veery",
	"Vermilion Flycatcher",
	"Vesper Sparrow",
	"Violet-green Swallow",
	"Virginia Rail",
	"Warbling Vireo",
	"Western Bluebird",
	"Western Grebe",
	"Western Kingbird",
	"Western Meadowlark",
	"Western Sandpiper",
	"Western Screech-Owl",
	"Western Tanager",
	"Western Wood-Pewee",
	"Whimbrel",
	"White-breasted Nuthatch",
	"White-crowned Sparrow",
	"White-eyed Vireo",
	"White-faced Ibis",
	"White-throated Sparrow",
	"White-throated Swift",
	"White-winged Crossbill",
	"White-winged Dove",
	"Wild Turkey",
	"Willet",
	"Williamson's Sapsucker",
	"Willow Flycatcher",
	"Wilson's Phalarope",
	"Wilson's Snipe",
	"Wilson's Warbler",
	"Winter Wren",
	"Wood Duck",
	"Wood Stork",
	"Wood Thrush",
	"Worm-eating Warbler",
	"Wrentit",
	"Yellow Warbler",
	"Yellow-bellied Sapsucker",
	"Yellow-billed Cuckoo",
	"Yellow-breasted Chat",
	"Yellow-crowned Night-Heron",
	"Yellow-headed Blackbird",
	"Yellow-rumped Warbler",
	"Yellow-throated Vireo",
	"Yellow-throated Warbler",
}
