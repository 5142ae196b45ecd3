package main

// Format is the shape of an inventory document.
type Format string

const (
	FormatGood    Format = "good"
	FormatMona    Format = "mona"
	FormatUnknown Format = "unknown"
)

// Position is one of the five artifact slots in mona's vocabulary.
type Position string

const (
	PosFlower  Position = "flower"
	PosFeather Position = "feather"
	PosSand    Position = "sand"
	PosCup     Position = "cup"
	PosHead    Position = "head"
)

var positions = [5]Position{PosFlower, PosFeather, PosSand, PosCup, PosHead}

// AllPositions returns the five positions in mona's bucket order.
func AllPositions() []Position {
	out := positions
	return out[:]
}

// StatName is mona's artifact stat name.
type StatName string

const (
	StatLifeStatic       StatName = "lifeStatic"
	StatAttackStatic     StatName = "attackStatic"
	StatDefendStatic     StatName = "defendStatic"
	StatLifePercentage   StatName = "lifePercentage"
	StatAttackPercentage StatName = "attackPercentage"
	StatDefendPercentage StatName = "defendPercentage"
	StatElementalMastery StatName = "elementalMastery"
	StatRecharge         StatName = "recharge"
	StatCritical         StatName = "critical"
	StatCriticalDamage   StatName = "criticalDamage"
	StatCureEffect       StatName = "cureEffect"
	StatFireBonus        StatName = "fireBonus"
	StatThunderBonus     StatName = "thunderBonus"
	StatWaterBonus       StatName = "waterBonus"
	StatIceBonus         StatName = "iceBonus"
	StatWindBonus        StatName = "windBonus"
	StatRockBonus        StatName = "rockBonus"
	StatDendroBonus      StatName = "dendroBonus"
	StatPhysicalBonus    StatName = "physicalBonus"
)

// SetName is mona's artifact set identifier. The valid values are exactly the
// right-hand side of setKeyMap.
type SetName string

// Tag is a stat line. Percentage stats hold decimal fractions (0.311, not 31.1).
type Tag struct {
	Name  StatName `json:"name"`
	Value float64  `json:"value"`
}

// Artifact is one record in mona's import shape.
type Artifact struct {
	SetName    SetName  `json:"setName"`
	Position   Position `json:"position"`
	MainTag    Tag      `json:"mainTag"`
	NormalTags []Tag    `json:"normalTags"`
	Star       int      `json:"star"`
	Level      int      `json:"level"`
	Omit       bool     `json:"omit"`
	// Equip is the GOOD location, kept only as a grouping hint for the importer.
	Equip string `json:"equip,omitempty"`
}

// ConversionResult holds the converted artifacts bucketed by position and the
// number of GOOD records that were rejected.
type ConversionResult struct {
	Buckets map[Position][]Artifact
	Skipped int
}

func newConversionResult() *ConversionResult {
	res := &ConversionResult{Buckets: make(map[Position][]Artifact, len(positions))}
	for _, p := range positions {
		res.Buckets[p] = []Artifact{}
	}
	return res
}

// Converted returns the number of artifacts across all buckets.
func (r *ConversionResult) Converted() int {
	n := 0
	for _, b := range r.Buckets {
		n += len(b)
	}
	return n
}
