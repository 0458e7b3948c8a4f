package engine

import "sort"

// board is the standard 40-space USA board. Positions are fixed and the
// catalog is immutable; per-game ownership lives in GameState.Titles.
var board = [BoardSize]Space{
	{Position: 0, Name: "GO", Kind: SpaceGo},
	{Position: 1, Name: "Mediterranean Avenue", Kind: SpaceProperty, Color: GroupBrown, Price: 60, HouseCost: 50, Rents: [6]int{2, 10, 30, 90, 160, 250}},
	{Position: 2, Name: "Community Chest", Kind: SpaceCommunityChest},
	{Position: 3, Name: "Baltic Avenue", Kind: SpaceProperty, Color: GroupBrown, Price: 60, HouseCost: 50, Rents: [6]int{4, 20, 60, 180, 320, 450}},
	{Position: 4, Name: "Income Tax", Kind: SpaceTax, TaxAmount: 200},
	{Position: 5, Name: "Reading Railroad", Kind: SpaceRailroad, Price: 200},
	{Position: 6, Name: "Oriental Avenue", Kind: SpaceProperty, Color: GroupLightBlue, Price: 100, HouseCost: 50, Rents: [6]int{6, 30, 90, 270, 400, 550}},
	{Position: 7, Name: "Chance", Kind: SpaceChance},
	{Position: 8, Name: "Vermont Avenue", Kind: SpaceProperty, Color: GroupLightBlue, Price: 100, HouseCost: 50, Rents: [6]int{6, 30, 90, 270, 400, 550}},
	{Position: 9, Name: "Connecticut Avenue", Kind: SpaceProperty, Color: GroupLightBlue, Price: 120, HouseCost: 50, Rents: [6]int{8, 40, 100, 300, 450, 600}},
	{Position: 10, Name: "Jail / Just Visiting", Kind: SpaceJail},
	{Position: 11, Name: "St. Charles Place", Kind: SpaceProperty, Color: GroupPink, Price: 140, HouseCost: 100, Rents: [6]int{10, 50, 150, 450, 625, 750}},
	{Position: 12, Name: "Electric Company", Kind: SpaceUtility, Price: 150},
	{Position: 13, Name: "States Avenue", Kind: SpaceProperty, Color: GroupPink, Price: 140, HouseCost: 100, Rents: [6]int{10, 50, 150, 450, 625, 750}},
	{Position: 14, Name: "Virginia Avenue", Kind: SpaceProperty, Color: GroupPink, Price: 160, HouseCost: 100, Rents: [6]int{12, 60, 180, 500, 700, 900}},
	{Position: 15, Name: "Pennsylvania Railroad", Kind: SpaceRailroad, Price: 200},
	{Position: 16, Name: "St. James Place", Kind: SpaceProperty, Color: GroupOrange, Price: 180, HouseCost: 100, Rents: [6]int{14, 70, 200, 550, 750, 950}},
	{Position: 17, Name: "Community Chest", Kind: SpaceCommunityChest},
	{Position: 18, Name: "Tennessee Avenue", Kind: SpaceProperty, Color: GroupOrange, Price: 180, HouseCost: 100, Rents: [6]int{14, 70, 200, 550, 750, 950}},
	{Position: 19, Name: "New York Avenue", Kind: SpaceProperty, Color: GroupOrange, Price: 200, HouseCost: 100, Rents: [6]int{16, 80, 220, 600, 800, 1000}},
	{Position: 20, Name: "Free Parking", Kind: SpaceFreeParking},
	{Position: 21, Name: "Kentucky Avenue", Kind: SpaceProperty, Color: GroupRed, Price: 220, HouseCost: 150, Rents: [6]int{18, 90, 250, 700, 875, 1050}},
	{Position: 22, Name: "Chance", Kind: SpaceChance},
	{Position: 23, Name: "Indiana Avenue", Kind: SpaceProperty, Color: GroupRed, Price: 220, HouseCost: 150, Rents: [6]int{18, 90, 250, 700, 875, 1050}},
	{Position: 24, Name: "Illinois Avenue", Kind: SpaceProperty, Color: GroupRed, Price: 240, HouseCost: 150, Rents: [6]int{20, 100, 300, 750, 925, 1100}},
	{Position: 25, Name: "B. & O. Railroad", Kind: SpaceRailroad, Price: 200},
	{Position: 26, Name: "Atlantic Avenue", Kind: SpaceProperty, Color: GroupYellow, Price: 260, HouseCost: 150, Rents: [6]int{22, 110, 330, 800, 975, 1150}},
	{Position: 27, Name: "Ventnor Avenue", Kind: SpaceProperty, Color: GroupYellow, Price: 260, HouseCost: 150, Rents: [6]int{22, 110, 330, 800, 975, 1150}},
	{Position: 28, Name: "Water Works", Kind: SpaceUtility, Price: 150},
	{Position: 29, Name: "Marvin Gardens", Kind: SpaceProperty, Color: GroupYellow, Price: 280, HouseCost: 150, Rents: [6]int{24, 120, 360, 850, 1025, 1200}},
	{Position: 30, Name: "Go To Jail", Kind: SpaceGoToJail},
	{Position: 31, Name: "Pacific Avenue", Kind: SpaceProperty, Color: GroupGreen, Price: 300, HouseCost: 200, Rents: [6]int{26, 130, 390, 900, 1100, 1275}},
	{Position: 32, Name: "North Carolina Avenue", Kind: SpaceProperty, Color: GroupGreen, Price: 300, HouseCost: 200, Rents: [6]int{26, 130, 390, 900, 1100, 1275}},
	{Position: 33, Name: "Community Chest", Kind: SpaceCommunityChest},
	{Position: 34, Name: "Pennsylvania Avenue", Kind: SpaceProperty, Color: GroupGreen, Price: 320, HouseCost: 200, Rents: [6]int{28, 150, 450, 1000, 1200, 1400}},
	{Position: 35, Name: "Short Line", Kind: SpaceRailroad, Price: 200},
	{Position: 36, Name: "Chance", Kind: SpaceChance},
	{Position: 37, Name: "Park Place", Kind: SpaceProperty, Color: GroupDarkBlue, Price: 350, HouseCost: 200, Rents: [6]int{35, 175, 500, 1100, 1300, 1500}},
	{Position: 38, Name: "Luxury Tax", Kind: SpaceTax, TaxAmount: 100},
	{Position: 39, Name: "Boardwalk", Kind: SpaceProperty, Color: GroupDarkBlue, Price: 400, HouseCost: 200, Rents: [6]int{50, 200, 600, 1400, 1700, 2000}},
}

// SpaceAt returns the catalog entry for a board position.
func SpaceAt(position int) Space {
	return board[((position%BoardSize)+BoardSize)%BoardSize]
}

// Board returns the full catalog in position order.
func Board() []Space {
	spaces := make([]Space, BoardSize)
	copy(spaces, board[:])
	return spaces
}

// GroupPositions returns the board positions belonging to a color group.
func GroupPositions(color ColorGroup) []int {
	var positions []int
	for _, s := range board {
		if s.Kind == SpaceProperty && s.Color == color {
			positions = append(positions, s.Position)
		}
	}
	return positions
}

// RailroadPositions returns the four railroad positions.
func RailroadPositions() []int {
	return kindPositions(SpaceRailroad)
}

// UtilityPositions returns the two utility positions.
func UtilityPositions() []int {
	return kindPositions(SpaceUtility)
}

func kindPositions(kind SpaceKind) []int {
	var positions []int
	for _, s := range board {
		if s.Kind == kind {
			positions = append(positions, s.Position)
		}
	}
	return positions
}

// nearestAhead returns the first of targets reached moving clockwise
// from position, wrapping past GO.
func nearestAhead(position int, targets []int) int {
	sorted := append([]int(nil), targets...)
	sort.Ints(sorted)
	for _, t := range sorted {
		if t > position {
			return t
		}
	}
	return sorted[0]
}
