package engine

// SpaceKind represents the different kinds of board spaces
type SpaceKind string

const (
	SpaceGo             SpaceKind = "go"
	SpaceProperty       SpaceKind = "property"
	SpaceRailroad       SpaceKind = "railroad"
	SpaceUtility        SpaceKind = "utility"
	SpaceTax            SpaceKind = "tax"
	SpaceChance         SpaceKind = "chance"
	SpaceCommunityChest SpaceKind = "community_chest"
	SpaceJail           SpaceKind = "jail"
	SpaceGoToJail       SpaceKind = "go_to_jail"
	SpaceFreeParking    SpaceKind = "free_parking"
)

// ColorGroup identifies the monopoly group a street property belongs to
type ColorGroup string

const (
	GroupBrown     ColorGroup = "brown"
	GroupLightBlue ColorGroup = "light_blue"
	GroupPink      ColorGroup = "pink"
	GroupOrange    ColorGroup = "orange"
	GroupRed       ColorGroup = "red"
	GroupYellow    ColorGroup = "yellow"
	GroupGreen     ColorGroup = "green"
	GroupDarkBlue  ColorGroup = "dark_blue"
)

// Phase represents what the current player is expected to do next
type Phase string

const (
	PhaseAwaitingRoll     Phase = "awaiting_roll"
	PhaseAwaitingPurchase Phase = "awaiting_purchase"
)

const (
	// Board layout constants
	BoardSize        = 40
	GoPosition       = 0
	JailPosition     = 10
	GoToJailPosition = 30

	// Validation constants
	MinPlayers = 2
	MaxPlayers = 8

	// Building levels: 1-4 are houses, 5 is a hotel
	MaxBuildings = 5
	HotelLevel   = 5

	// Railroad base rent, doubled per additional railroad owned
	RailroadBaseRent = 25

	// Utility dice multipliers
	UtilitySingleMultiplier = 4
	UtilityPairMultiplier   = 10

	// Third consecutive doubles sends the roller to jail
	MaxConsecutiveDoubles = 3
)

// Space represents a single board space. Price, rent and building fields
// are only meaningful for ownable kinds; TaxAmount only for tax spaces.
type Space struct {
	Position  int        `json:"position"`
	Name      string     `json:"name"`
	Kind      SpaceKind  `json:"kind"`
	Color     ColorGroup `json:"color,omitempty"`
	Price     int        `json:"price,omitempty"`
	HouseCost int        `json:"house_cost,omitempty"`
	TaxAmount int        `json:"tax_amount,omitempty"`

	// Rents is indexed by building level: 0 = unimproved, 1-4 = houses,
	// 5 = hotel. The unimproved rate doubles when the owner holds the
	// full color group.
	Rents [6]int `json:"rents,omitempty"`
}

// MortgageValue returns the cash the bank advances against the deed.
func (s Space) MortgageValue() int {
	return s.Price / 2
}

// Ownable reports whether the space can be bought and held by a player.
func (s Space) Ownable() bool {
	switch s.Kind {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		return true
	}
	return false
}

// Rules represents the tunable game parameters loaded from JSON
type Rules struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	StartingCash         int    `json:"starting_cash"`
	GoSalary             int    `json:"go_salary"`
	JailFine             int    `json:"jail_fine"`
	MaxJailTurns         int    `json:"max_jail_turns"`
	Houses               int    `json:"houses"`
	Hotels               int    `json:"hotels"`
	AuctionFloor         int    `json:"auction_floor"`
	UnmortgagePremiumPct int    `json:"unmortgage_premium_pct"`
}

// Player represents one seat at the table
type Player struct {
	Name      string `json:"name"`
	Position  int    `json:"position"`
	Cash      int    `json:"cash"`
	InJail    bool   `json:"in_jail"`
	JailTurns int    `json:"jail_turns"`
	JailCards int    `json:"jail_cards"`
	Bankrupt  bool   `json:"bankrupt"`

	// JailDecks names the source deck of each held jail-free card, so a
	// spent card returns to the deck it came from. Length tracks JailCards.
	JailDecks []string `json:"jail_decks,omitempty"`

	// Properties holds board positions of owned deeds, kept sorted
	Properties []int `json:"properties"`
}

// Title tracks the ownership record of one ownable space
type Title struct {
	Owner     string `json:"owner,omitempty"`
	Mortgaged bool   `json:"mortgaged,omitempty"`
	Buildings int    `json:"buildings,omitempty"`
}

// EffectKind tags the behavior of a drawn card
type EffectKind string

const (
	EffectAdvance        EffectKind = "advance"
	EffectAdvanceNearest EffectKind = "advance_nearest"
	EffectMoveBack       EffectKind = "move_back"
	EffectCollect        EffectKind = "collect"
	EffectPay            EffectKind = "pay"
	EffectCollectEach    EffectKind = "collect_each"
	EffectPayEach        EffectKind = "pay_each"
	EffectJailFree       EffectKind = "jail_free"
	EffectGoToJail       EffectKind = "go_to_jail"
	EffectRepairs        EffectKind = "repairs"
)

// CardEffect describes what happens when a card is drawn. Which fields
// matter depends on Kind.
type CardEffect struct {
	Kind      EffectKind `json:"kind"`
	Amount    int        `json:"amount,omitempty"`
	Position  int        `json:"position,omitempty"`
	Spaces    int        `json:"spaces,omitempty"`
	Target    SpaceKind  `json:"target,omitempty"`
	CollectGo bool       `json:"collect_go,omitempty"`
	PerHouse  int        `json:"per_house,omitempty"`
	PerHotel  int        `json:"per_hotel,omitempty"`
}

// Card pairs the printed text with its typed effect
type Card struct {
	Text   string     `json:"text"`
	Effect CardEffect `json:"effect"`
}

// Deck represents one of the two card decks. Cards are drawn from the
// front and recycled to the back, except Get Out of Jail Free cards,
// which stay with the player until used or traded.
type Deck struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`

	// HeldJailFree counts jail-free cards currently out of the deck
	HeldJailFree int `json:"held_jail_free,omitempty"`
}

// Event is a single human-readable thing that happened during an operation
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// GameState represents the complete table state
type GameState struct {
	Players         []*Player      `json:"players"`
	Current         int            `json:"current_player_index"`
	Phase           Phase          `json:"phase"`
	PendingPurchase int            `json:"pending_purchase"`
	DoublesStreak   int            `json:"doubles_streak"`
	ExtraRoll       bool           `json:"extra_roll,omitempty"`
	LastDice        [2]int         `json:"last_dice"`
	Titles          map[int]*Title `json:"titles"`
	HousePool       int            `json:"houses_remaining"`
	HotelPool       int            `json:"hotels_remaining"`
	Chance          *Deck          `json:"chance"`
	CommunityChest  *Deck          `json:"community_chest"`
	TurnCount       int            `json:"turn_count"`
	GameOver        bool           `json:"game_over"`
	Winner          string         `json:"winner,omitempty"`
	RulesName       string         `json:"rules_name"`
}

// TurnOutcome summarizes one roll, jail payment or jail card play
type TurnOutcome struct {
	Player    string  `json:"player"`
	Dice      [2]int  `json:"dice"`
	Doubles   bool    `json:"doubles"`
	ExtraTurn bool    `json:"extra_turn"`
	LandedOn  int     `json:"landed_on"`
	PassedGo  bool    `json:"passed_go"`
	Cash      int     `json:"cash"`
	Phase     Phase   `json:"phase"`
	GameOver  bool    `json:"game_over"`
	Winner    string  `json:"winner,omitempty"`
	Events    []Event `json:"events"`
}

// PurchaseOutcome summarizes a completed purchase or auction
type PurchaseOutcome struct {
	Position  int     `json:"position"`
	Property  string  `json:"property"`
	Buyer     string  `json:"buyer,omitempty"`
	Price     int     `json:"price"`
	Sold      bool    `json:"sold"`
	ExtraTurn bool    `json:"extra_turn"`
	Events    []Event `json:"events"`
}

// PropertyDetail is the per-deed view returned for a player's holdings
type PropertyDetail struct {
	Position      int        `json:"position"`
	Name          string     `json:"name"`
	Kind          SpaceKind  `json:"kind"`
	Color         ColorGroup `json:"color,omitempty"`
	Price         int        `json:"price"`
	Buildings     int        `json:"buildings"`
	Mortgaged     bool       `json:"mortgaged"`
	MortgageValue int        `json:"mortgage_value"`
	CurrentRent   int        `json:"current_rent"`
	FullGroup     bool       `json:"full_group"`
}

// TradeOffer describes an atomic two-sided exchange between players.
// Give* fields move from From to To; Receive* fields move the other way.
type TradeOffer struct {
	ID                string `json:"id,omitempty"`
	From              string `json:"from"`
	To                string `json:"to"`
	GiveProperties    []int  `json:"give_properties,omitempty"`
	GiveCash          int    `json:"give_cash,omitempty"`
	GiveJailCards     int    `json:"give_jail_cards,omitempty"`
	ReceiveProperties []int  `json:"receive_properties,omitempty"`
	ReceiveCash       int    `json:"receive_cash,omitempty"`
	ReceiveJailCards  int    `json:"receive_jail_cards,omitempty"`
}
