package chess

// TagName indexes the fixed header schema. The order of the constants is
// the column order of every exported game record.
type TagName int

const (
	EventTag TagName = iota
	SiteTag
	DateTag
	RoundTag
	WhiteTag
	BlackTag
	ResultTag
	WhiteEloTag
	BlackEloTag
	WhiteRatingDiffTag
	BlackRatingDiffTag
	ECOTag
	OpeningTag
	TimeControlTag
	UTCDateTag
	UTCTimeTag
	TerminationTag
	NumHeaderTags // Sentinel, must be last
)

// MovesColumn is the name of the column that follows the header fields.
const MovesColumn = "Moves"

// TagNameStrings maps tag indices to their PGN tag names.
var TagNameStrings = [NumHeaderTags]string{
	EventTag:           "Event",
	SiteTag:            "Site",
	DateTag:            "Date",
	RoundTag:           "Round",
	WhiteTag:           "White",
	BlackTag:           "Black",
	ResultTag:          "Result",
	WhiteEloTag:        "WhiteElo",
	BlackEloTag:        "BlackElo",
	WhiteRatingDiffTag: "WhiteRatingDiff",
	BlackRatingDiffTag: "BlackRatingDiff",
	ECOTag:             "ECO",
	OpeningTag:         "Opening",
	TimeControlTag:     "TimeControl",
	UTCDateTag:         "UTCDate",
	UTCTimeTag:         "UTCTime",
	TerminationTag:     "Termination",
}

// String returns the PGN tag name.
func (t TagName) String() string {
	if t >= 0 && t < NumHeaderTags {
		return TagNameStrings[t]
	}
	return "Unknown"
}

// StringToTagName maps tag strings to their indices.
var StringToTagName map[string]TagName

func init() {
	StringToTagName = make(map[string]TagName, NumHeaderTags)
	for tag, name := range TagNameStrings {
		StringToTagName[name] = TagName(tag)
	}
}

// UnknownTagValue is the value of a header field missing from a game.
const UnknownTagValue = "?"
